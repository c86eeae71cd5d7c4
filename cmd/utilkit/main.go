// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package main provides the utilkit command-line interface: slugs and title
// casing, AES-256-GCM text encryption, date and price formatting, a delay
// helper, and the HTTP server exposing the same operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/models"
)

// Populated at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// A .env file is optional; variables already set in the environment win.
	_ = godotenv.Load()

	version := buildVersion
	if version == "" {
		version = "N/A"
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := &cli.Command{
		Name:     "utilkit",
		Usage:    "text, encryption, date and price utilities with an optional HTTP server",
		Version:  version,
		Commands: getCommands(build),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
