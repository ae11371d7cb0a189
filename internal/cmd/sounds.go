package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/hotline/internal/adapters/apiclient"
	adaptersound "github.com/renato0307/hotline/internal/adapters/sound"
	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/theme"
)

// SoundsCmd groups the sound library commands
type SoundsCmd struct {
	List   SoundsListCmd   `cmd:"list" help:"List uploaded sounds" default:"1"`
	Upload SoundsUploadCmd `cmd:"upload" help:"Upload .mp3 or .wav files"`
	Delete SoundsDeleteCmd `cmd:"delete" help:"Delete a sound"`
	Play   SoundsPlayCmd   `cmd:"play" help:"Play a sound from the library"`
}

// SoundsListCmd lists the library
type SoundsListCmd struct {
	Format string `help:"Output format" enum:"table,json" default:"table" short:"f"`
}

// Run executes the list command
func (s *SoundsListCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	assets, err := client.Sounds(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sounds: %w", err)
	}

	if s.Format == "json" {
		if assets == nil {
			assets = []domain.SoundAsset{}
		}
		return printJSON(assets)
	}

	if len(assets) == 0 {
		fmt.Fprintln(stdout, theme.MutedStyle.Render("No sounds uploaded."))
		return nil
	}
	t := newTable("FILENAME", "SIZE", "MODIFIED")
	for _, a := range assets {
		t.Row(a.Filename, humanize.IBytes(uint64(a.SizeBytes)), relativeTime(a.ModifiedAt))
	}
	fmt.Fprintln(stdout, t.String())
	return nil
}

// SoundsUploadCmd uploads local files
type SoundsUploadCmd struct {
	Files []string `arg:"" help:"Files to upload (at most 10)" type:"existingfile"`
}

// Run executes the upload command
func (s *SoundsUploadCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}

	results, err := client.UploadSounds(context.Background(), s.Files...)
	for _, r := range results {
		if r.OK() {
			size := ""
			if r.Sound != nil {
				size = " (" + humanize.IBytes(uint64(r.Sound.SizeBytes)) + ")"
			}
			success("%s → %s%s", r.OriginalName, r.Filename, size)
			continue
		}
		fmt.Fprintf(stdout, "%s %s: %s\n", theme.ErrorStyle.Render("✗"), r.OriginalName, r.Error)
	}
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}

// SoundsDeleteCmd removes a sound
type SoundsDeleteCmd struct {
	Filename string `arg:"" help:"Sound filename"`
}

// Run executes the delete command
func (s *SoundsDeleteCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	if err := client.DeleteSound(context.Background(), s.Filename); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.Filename, err)
	}
	success("Deleted %s", s.Filename)
	return nil
}

// SoundsPlayCmd plays a library sound on this machine
type SoundsPlayCmd struct {
	Filename string `arg:"" help:"Sound filename"`
}

// Run executes the play command
func (s *SoundsPlayCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	player := adaptersound.NewPlayer(config.GetSoundsDir())
	cache := apiclient.NewSoundCache(client, config.GetSoundCacheDir(), player)
	if err := cache.Play(context.Background(), s.Filename); err != nil {
		return fmt.Errorf("failed to play %s: %w", s.Filename, err)
	}
	return nil
}
