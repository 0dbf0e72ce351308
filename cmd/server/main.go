// Package main is the entry point for the rpg-mechanics gRPC server and its tooling
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-mechanics/cmd/server/client"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rpg-mechanics",
	Short: "RPG mechanics cost engine",
	Long: `rpg-mechanics prices powers, techniques and items from part catalogs and serves
the calculations over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .rpg-mechanics.toml)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func initConfig() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".rpg-mechanics")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	// A missing config file is fine; defaults and env cover everything
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file %s", viper.ConfigFileUsed())
	}
}
