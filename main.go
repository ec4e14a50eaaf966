package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"marketgenius/clipboard"
	"marketgenius/config"
	"marketgenius/controller"
	"marketgenius/generator"
	"marketgenius/render"
	"marketgenius/view"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "marketgenius",
	Short:         "Generate marketing copy with an LLM",
	Long:          "MarketGenius collects marketing-content parameters, sends them as one prompt to a text-generation provider and renders the markdown it returns.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info logs")
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the wired set of components shared by the commands.
type app struct {
	cfg    config.Config
	ctrl   *controller.Controller
	form   *view.Form
	result *view.Result
}

func buildApp(clip clipboard.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	llm, err := generator.NewLLM(cfg.LLMSettings())
	if err != nil {
		return nil, err
	}
	client, err := generator.NewClient(llm, log.Default())
	if err != nil {
		return nil, err
	}
	ctrl, err := controller.New(client, controller.WithVerbose(cfg.Verbose))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		ctrl:   ctrl,
		form:   view.NewForm(ctrl),
		result: view.NewResult(ctrl, clip, render.New()),
	}, nil
}
