package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

// distDir receives the client build; the server overlays it on the embedded assets.
const distDir = "ui/dist"

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := buildClient(ctx); err != nil {
		// The site works without the client; serve it anyway.
		fmt.Fprintf(os.Stderr, "client build skipped: %v\n", err)
	}

	procs := []procConfig{
		{
			Name: "site",
			Args: []string{
				"go", "run", "./cmd/convertx", "serve",
				"--listen", "127.0.0.1:4173",
				"--assets", distDir,
			},
		},
	}

	if err := runAll(ctx, procs); err != nil {
		fmt.Fprintf(os.Stderr, "convertx exited with error: %v\n", err)
		os.Exit(1)
	}
}

// buildClient compiles the WASM client into distDir next to the loader
// shipped with the toolchain.
func buildClient(ctx context.Context) error {
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return err
	}
	if err := run(ctx, procConfig{
		Name: "build-wasm",
		Args: []string{"go", "build", "-o", filepath.Join(distDir, "main.wasm"), "./cmd/convertx-wasm"},
		Env:  []string{"GOOS=js", "GOARCH=wasm"},
	}); err != nil {
		return err
	}
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("go env GOROOT: %w", err)
	}
	root := strings.TrimSpace(string(out))
	for _, candidate := range []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	} {
		if err := copyFile(candidate, filepath.Join(distDir, "wasm_exec.js")); err == nil {
			return nil
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", root)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func command(ctx context.Context, cfg procConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	return cmd
}

func run(ctx context.Context, cfg procConfig) error {
	if err := command(ctx, cfg).Run(); err != nil {
		return fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return nil
}

func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := command(ctx, cfg)
			if err := cmd.Start(); err != nil {
				errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				return
			}
			if err := cmd.Wait(); err != nil {
				// If the context was cancelled, treat the exit as expected.
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		shutdownDelay := time.After(2 * time.Second)
		select {
		case <-done:
		case <-shutdownDelay:
		}
	case err := <-errCh:
		return err
	case <-done:
	}
	return nil
}
