// Package main generates API documentation for widgetkit packages
// using gomarkdoc.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Package represents a Go package to document.
type Package struct {
	Name     string
	Title    string
	Path     string
	Position int
}

// Packages to document (public-facing), in order.
var packages = []Package{
	{Name: "widgets", Title: "Widgets", Path: "pkg/widgets", Position: 1},
	{Name: "carousel", Title: "Carousel", Path: "pkg/carousel", Position: 2},
	{Name: "layout", Title: "Layout", Path: "pkg/layout", Position: 3},
	{Name: "graphics", Title: "Graphics", Path: "pkg/graphics", Position: 4},
	{Name: "gestures", Title: "Gestures", Path: "pkg/gestures", Position: 5},
	{Name: "animation", Title: "Animation", Path: "pkg/animation", Position: 6},
	{Name: "theme", Title: "Theme", Path: "pkg/theme", Position: 7},
	{Name: "errors", Title: "Errors", Path: "pkg/errors", Position: 8},
	{Name: "kittest", Title: "Kittest", Path: "pkg/kittest", Position: 9},
}

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	if err := ensureGomarkdoc(); err != nil {
		fmt.Fprintf(os.Stderr, "Error ensuring gomarkdoc: %v\n", err)
		os.Exit(1)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	for _, pkg := range packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}

		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		if err := generatePackageDocs(root, pkg, apiDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
	}

	fmt.Println("\nDocumentation generated successfully!")
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func ensureGomarkdoc() error {
	if _, err := exec.LookPath("gomarkdoc"); err == nil {
		return nil
	}

	fmt.Println("Installing gomarkdoc...")
	cmd := exec.Command("go", "install", "github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func generatePackageDocs(root string, pkg Package, apiDir string) error {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("  Warning: skipping %s (gomarkdoc error)\n", pkg.Name)
		return nil
	}

	content := stdout.String()
	if content == "" {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return nil
	}

	content = processMarkdown(content)

	frontmatter := fmt.Sprintf(`---
id: %s
title: %s
sidebar_position: %d
---

`, pkg.Name, pkg.Title, pkg.Position)

	outputPath := filepath.Join(apiDir, pkg.Name+".md")
	return os.WriteFile(outputPath, []byte(frontmatter+content), 0644)
}

func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	skipNext := false
	inIndex := false

	for i, line := range lines {
		// Skip the first header line since the frontmatter adds a title
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		// Skip the Index section (starts with "## Index", ends at next ## heading)
		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if strings.HasPrefix(line, "## ") {
				inIndex = false
			} else {
				continue
			}
		}

		// Skip "import" lines that show the import path
		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.Contains(lines[i+1], "import") {
			skipNext = true
		}
		if skipNext && line == "```" {
			skipNext = false
			continue
		}
		if skipNext {
			continue
		}

		// Convert <details><summary>Example</summary> to **Example:**
		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := line[len("<details><summary>") : len(line)-len("</summary>")]
			result = append(result, "", fmt.Sprintf("**%s:**", summary), "")
			continue
		}

		// Skip </details>, <p>, and </p> tags from gomarkdoc
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
