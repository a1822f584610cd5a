package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ostools/mounttab/internal/config"
	"github.com/ostools/mounttab/internal/log"
	"github.com/ostools/mounttab/internal/validation"
	"github.com/ostools/mounttab/internal/version"
	"github.com/ostools/mounttab/pkg/mounttab"
)

func main() {
	cmd := &cli.Command{
		Name:  "mounttab",
		Usage: "Inspect and edit Unix mount tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				Value:   config.DefaultConfigPath,
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Table file to read instead of the default path",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on the first malformed line instead of skipping it",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "Print version information",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mounts",
				Usage:  "Print the mount table (default: /proc/mounts)",
				Action: runMounts,
			},
			{
				Name:   "swaps",
				Usage:  "Print the swap table (default: /proc/swaps)",
				Action: runSwaps,
			},
			{
				Name:  "fstab",
				Usage: "Read and edit the filesystem table (default: /etc/fstab)",
				Commands: []*cli.Command{
					{
						Name:  "get",
						Usage: "Print the entry mounted at a target path",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "target",
								Aliases:  []string{"t"},
								Usage:    "Mount point to look up",
								Required: true,
							},
						},
						Action: runFstabGet,
					},
					{
						Name:  "set",
						Usage: "Replace or append an entry, preserving the rest of the file",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "source",
								Aliases:  []string{"s"},
								Usage:    "Device or pseudo-device to mount",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "target",
								Aliases:  []string{"t"},
								Usage:    "Mount point",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "fstype",
								Usage:    "Filesystem type",
								Required: true,
							},
							&cli.StringFlag{
								Name:    "options",
								Aliases: []string{"o"},
								Usage:   "Comma-separated mount options",
								Value:   "defaults",
							},
							&cli.IntFlag{
								Name:  "dump",
								Usage: "Dump frequency",
							},
							&cli.IntFlag{
								Name:  "pass",
								Usage: "fsck pass number",
							},
							&cli.StringFlag{
								Name:  "output",
								Usage: "Write the edited table to this path instead of stdout",
							},
						},
						Action: runFstabSet,
					},
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Println(version.String())
				return nil
			}
			return cli.ShowAppHelp(cmd)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file, merges the relevant CLI flags over it and
// validates the result. Every subcommand goes through here.
func setup(cmd *cli.Command) (*config.Config, error) {
	log.Setup(cmd.Bool("verbose"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// The --file flag overrides whichever table the subcommand reads.
	file := cmd.String("file")
	cfg.Merge(file, file, file, cmd.Bool("strict"))
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func runMounts(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	log.Debug("reading mount table", "path", cfg.MountsPath, "strict", cfg.Strict)

	file, err := os.Open(cfg.MountsPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.MountsPath, err)
	}
	defer file.Close()

	mounts, err := mounttab.ParseMounts(file, cfg.Mode())
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.MountsPath, err)
	}

	for _, entry := range mounts {
		fmt.Println(entry)
	}
	return nil
}

func runSwaps(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	log.Debug("reading swap table", "path", cfg.SwapsPath, "strict", cfg.Strict)

	file, err := os.Open(cfg.SwapsPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.SwapsPath, err)
	}
	defer file.Close()

	swaps, err := mounttab.ParseSwaps(file, cfg.Mode())
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.SwapsPath, err)
	}

	for _, entry := range swaps {
		fmt.Println(entry)
	}
	return nil
}

func runFstabGet(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	table, err := openTable(cfg)
	if err != nil {
		return err
	}

	target := cmd.String("target")
	pos, ok := table.FindTarget(target)
	if !ok {
		return fmt.Errorf("no entry mounted at %q", target)
	}

	entry, _ := table.Entry(pos)
	fmt.Println(entry)
	return nil
}

func runFstabSet(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	entry := mounttab.MountEntry{
		Source:  cmd.String("source"),
		Target:  cmd.String("target"),
		FSType:  cmd.String("fstype"),
		Options: mounttab.ParseOptions(cmd.String("options")),
		Dump:    cmd.Int("dump"),
		Pass:    cmd.Int("pass"),
	}

	if err := validation.ValidateEntry(entry); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	table, err := openTable(cfg)
	if err != nil {
		return err
	}

	if pos, ok := table.FindTarget(entry.Target); ok {
		log.Debug("replacing entry", "target", entry.Target, "line", pos+1)
		if err := table.Replace(pos, entry); err != nil {
			return err
		}
	} else {
		log.Debug("appending entry", "target", entry.Target)
		table.Append(entry)
	}

	output := cmd.String("output")
	if output == "" || output == "-" {
		_, err := table.WriteTo(os.Stdout)
		return err
	}

	if err := os.WriteFile(output, []byte(table.Render()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Info("table written", "path", output)
	return nil
}

func openTable(cfg *config.Config) (*mounttab.Table, error) {
	file, err := os.Open(cfg.FstabPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.FstabPath, err)
	}
	defer file.Close()

	table, err := mounttab.ParseTable(file, cfg.Mode())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.FstabPath, err)
	}
	return table, nil
}
