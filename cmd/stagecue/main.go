package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/telari/stagecue/internal/choreo"
	"github.com/telari/stagecue/internal/config"
	"github.com/telari/stagecue/internal/sampler"
	"github.com/telari/stagecue/internal/storage"
	"github.com/telari/stagecue/internal/tui"
	"github.com/telari/stagecue/internal/viz"
)

var (
	dataDir    string
	configFile string
	// Layer flags
	slot    int
	start   float64
	end     float64
	label   string
	patch   bool
	fadeIn  float64
	fadeOut float64
	backing float64
	// Mark / resolve flags
	markTime float64
	markX    float64
	markY    float64
	// Plot flags
	plotSlot int
	plotAxis string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stagecue",
		Short: "assemble recorded dance performances into one synchronized choreography",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stagecue", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	newCmd := &cobra.Command{
		Use:   "new [title]",
		Short: "create a project",
		Args:  cobra.ExactArgs(1),
		RunE:  newProject,
	}
	newCmd.Flags().Float64Var(&backing, "backing", 0, "backing track duration in seconds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list projects",
		RunE:  listProjects,
	}

	showCmd := &cobra.Command{
		Use:   "show [project_id]",
		Short: "show project timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  showProject,
	}

	addLayerCmd := &cobra.Command{
		Use:   "add-layer [project_id]",
		Short: "add a motion clip layer",
		Args:  cobra.ExactArgs(1),
		RunE:  addLayer,
	}
	addLayerCmd.Flags().IntVar(&slot, "slot", 1, "performer slot (1-3)")
	addLayerCmd.Flags().Float64Var(&start, "start", 0, "start time in seconds")
	addLayerCmd.Flags().Float64Var(&end, "end", 0, "end time in seconds")
	addLayerCmd.Flags().StringVar(&label, "label", "", "clip label")
	addLayerCmd.Flags().BoolVar(&patch, "patch", false, "corrective patch overlay")
	addLayerCmd.Flags().Float64Var(&fadeIn, "fade-in", 0, "fade-in seconds")
	addLayerCmd.Flags().Float64Var(&fadeOut, "fade-out", 0, "fade-out seconds")

	rmLayerCmd := &cobra.Command{
		Use:   "rm-layer [project_id] [layer_id]",
		Short: "remove a layer",
		Args:  cobra.ExactArgs(2),
		RunE:  removeLayer,
	}

	markCmd := &cobra.Command{
		Use:   "mark [project_id]",
		Short: "commit a stage position at a point in time",
		Args:  cobra.ExactArgs(1),
		RunE:  markPosition,
	}
	markCmd.Flags().IntVar(&slot, "slot", 1, "performer slot (1-3)")
	markCmd.Flags().Float64Var(&markTime, "time", 0, "timeline seconds")
	markCmd.Flags().Float64Var(&markX, "x", 0.5, "stage x in [0,1]")
	markCmd.Flags().Float64Var(&markY, "y", 0.5, "stage y in [0,1]")

	resolveCmd := &cobra.Command{
		Use:   "resolve [project_id]",
		Short: "resolve active clips and positions at a point in time",
		Args:  cobra.ExactArgs(1),
		RunE:  resolveAt,
	}
	resolveCmd.Flags().Float64Var(&markTime, "time", 0, "timeline seconds")

	plotCmd := &cobra.Command{
		Use:   "plot [project_id]",
		Short: "plot a performer's stage coordinate over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProject,
	}
	plotCmd.Flags().IntVar(&plotSlot, "slot", 1, "performer slot (1-3)")
	plotCmd.Flags().StringVar(&plotAxis, "axis", "x", "stage axis: x or y")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [project_id]",
		Short: "export sampled traces to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	playCmd := &cobra.Command{
		Use:   "play [project_id]",
		Short: "interactive playback",
		Args:  cobra.ExactArgs(1),
		RunE:  playProject,
	}

	rootCmd.AddCommand(newCmd, listCmd, showCmd, addLayerCmd, rmLayerCmd,
		markCmd, resolveCmd, plotCmd, exportCSVCmd, playCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func openStore() (*storage.Store, error) {
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return nil, err
	}
	return store, nil
}

func newProject(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	p := choreo.NewProject(args[0])
	p.BackingDuration = backing
	id, err := store.Create(p)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func listProjects(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	projects, err := store.List()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("no projects")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDURATION\tLAYERS\tKEYFRAMES\tSAVED")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%d\t%d\t%s\n",
			p.ID, p.Title, p.Duration, p.Layers, p.Keyframes,
			p.SavedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func showProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%.2fs, backing %.2fs)\n\n", p.Title, p.Duration(), p.BackingDuration)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tLAYER\tSPAN\tPRIORITY\tKIND")
	for _, tr := range p.Tracks {
		for _, l := range tr.Layers {
			kind := "clip"
			if l.IsPatch(cfg.PatchPriority) {
				kind = "patch"
			}
			fmt.Fprintf(w, "%d\t%s\t%.2fs-%.2fs\t%d\t%s\n",
				tr.Slot, l.Label, l.Start, l.End, l.Priority, kind)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, tr := range p.Tracks {
		holds, cues := 0, 0
		for _, f := range tr.Keyframes {
			if _, ok := f.(choreo.Hold); ok {
				holds++
			} else {
				cues++
			}
		}
		fmt.Printf("performer %d: %d holds, %d transitions\n", tr.Slot, holds, cues)
	}
	return nil
}

func addLayer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := p.Track(slot)
	if err != nil {
		return err
	}

	spec := choreo.LayerSpec{Start: start, End: end, Label: label, FadeIn: fadeIn, FadeOut: fadeOut}
	var l choreo.Layer
	if patch {
		l, err = tr.AddPatchLayer(spec, cfg.PatchPriority)
	} else {
		l, err = tr.AddLayer(spec)
	}
	if err != nil {
		return err
	}
	if err := store.Save(args[0], p); err != nil {
		return err
	}
	fmt.Printf("layer %s priority %d\n", l.ID, l.Priority)
	return nil
}

func removeLayer(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}
	for _, tr := range p.Tracks {
		if err := tr.RemoveLayer(args[1]); err == nil {
			return store.Save(args[0], p)
		}
	}
	return choreo.ErrLayerNotFound
}

func markPosition(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := p.Track(slot)
	if err != nil {
		return err
	}

	editor := choreo.Editor{Epsilon: cfg.Epsilon, Lead: cfg.TransitionLead}
	if err := tr.CommitHold(editor, markTime, markX, markY); err != nil {
		return err
	}
	return store.Save(args[0], p)
}

func resolveAt(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tCLIP\tPOSITION")
	for _, tr := range p.Tracks {
		clip := "-"
		if l, ok := tr.ActiveLayer(markTime); ok {
			clip = l.Label
			if clip == "" {
				clip = l.ID
			}
		}
		pos := "-"
		if pt, ok := tr.Position(markTime); ok {
			pos = fmt.Sprintf("(%.3f, %.3f)", pt.X, pt.Y)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", tr.Slot, clip, pos)
	}
	return w.Flush()
}

func plotProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	traces, err := sampler.Sample(context.Background(), p, cfg.SampleRate)
	if err != nil {
		return err
	}
	if plotSlot < 1 || plotSlot > choreo.NumSlots {
		return choreo.ErrSlotRange
	}
	fmt.Println(viz.PlotTrace(traces[plotSlot-1], viz.Axis(plotAxis), 12))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	traces, err := sampler.Sample(context.Background(), p, cfg.SampleRate)
	if err != nil {
		return err
	}
	path := filepath.Join(store.Dir(args[0]), "trace.csv")
	if err := storage.WriteTraceCSV(path, traces); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func playProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(p, cfg.FrameRate, cfg.PatchPriority))
	_, err = program.Run()
	return err
}
