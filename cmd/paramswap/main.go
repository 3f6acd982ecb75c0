package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pluginradar/paramswap/pkg/chain"
	"github.com/pluginradar/paramswap/pkg/classify"
	"github.com/pluginradar/paramswap/pkg/debug"
	"github.com/pluginradar/paramswap/pkg/parammap"
	"github.com/pluginradar/paramswap/pkg/semantic"
	"github.com/pluginradar/paramswap/pkg/translate"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`
	Debug   bool             `help:"Log per-parameter translation detail to stderr"`
	LogFile string           `type:"path" help:"Append diagnostics to a file instead of stderr"`

	Validate  ValidateCmd  `cmd:"" help:"Check parameter map files for structural errors"`
	Classify  ClassifyCmd  `cmd:"" help:"Infer a parameter map from a plugin parameter listing"`
	Swap      SwapCmd      `cmd:"" help:"Translate a chain slot's settings onto a replacement plugin"`
	Semantics SemanticsCmd `cmd:"" help:"List the semantic parameter roles"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("paramswap"),
		kong.Description("Plugin parameter translation toolkit"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if cli.Debug {
		debug.SetLevel(debug.LogLevelDebug)
	}
	if cli.LogFile != "" {
		file, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			printError(fmt.Sprintf("cannot open log file: %v", err))
			os.Exit(1)
		}
		defer file.Close()
		debug.SetOutput(file)
		if !cli.Debug {
			debug.SetLevel(debug.LogLevelInfo)
		}
	}

	if err := ctx.Run(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

// ValidateCmd checks map files the way the store would before accepting
// them.
type ValidateCmd struct {
	Files []string `arg:"" name:"maps" type:"existingfile" help:"Parameter map JSON files"`
}

func (c *ValidateCmd) Run() error {
	failed := 0
	for _, path := range c.Files {
		m, err := readMap(path)
		if err != nil {
			fmt.Printf("%s %s: %v\n", badMark.Render("✗"), path, err)
			failed++
			continue
		}
		fmt.Printf("%s %s: %s (%s, %d parameters, confidence %d)\n",
			okMark.Render("✓"), path, m.PluginName, m.Source, len(m.Parameters), m.Confidence)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maps invalid", failed, len(c.Files))
	}
	return nil
}

// ClassifyCmd turns a host's parameter listing into an inferred map ready
// for curation.
type ClassifyCmd struct {
	Listing string `arg:"" type:"existingfile" help:"Plugin parameter listing JSON"`
	Output  string `short:"o" type:"path" help:"Write the inferred map here (default stdout)"`
}

func (c *ClassifyCmd) Run() error {
	f, err := os.Open(c.Listing)
	if err != nil {
		return err
	}
	listing, err := classify.DecodeListing(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Listing, err)
	}

	res, err := classify.ClassifyListing(listing)
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Output != "" {
		out, err = os.Create(c.Output)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	if err := parammap.EncodeMap(out, res.Map); err != nil {
		return err
	}

	// Summary goes to stderr so piped stdout stays clean JSON.
	fmt.Fprintf(os.Stderr, "%s: matched %d of %d parameters, confidence %d\n",
		res.Map.PluginName, res.MatchedCount, res.TotalCount, res.Map.Confidence)
	for _, name := range res.Unmatched {
		fmt.Fprintf(os.Stderr, "  %s %s\n", keyStyle.Render("unmatched:"), name)
	}
	return nil
}

// SwapCmd replaces the plugin in a chain slot and reports what carried
// over.
type SwapCmd struct {
	Slot      string `arg:"" type:"existingfile" help:"Chain slot JSON"`
	SourceMap string `type:"existingfile" help:"Parameter map of the slot's current plugin"`
	TargetMap string `type:"existingfile" help:"Parameter map of the replacement plugin"`

	TargetName         string `help:"Replacement plugin name (defaults to the target map's)"`
	TargetManufacturer string `help:"Replacement plugin manufacturer"`
	TargetFormat       string `default:"vst3" help:"Replacement plugin format"`
	TargetUID          string `help:"Replacement plugin UID (generated when omitted)"`

	Output string `short:"o" type:"path" help:"Write the new slot here (default stdout)"`
}

func (c *SwapCmd) Run() error {
	f, err := os.Open(c.Slot)
	if err != nil {
		return err
	}
	slot, err := chain.DecodeSlot(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Slot, err)
	}

	var sourceMap, targetMap *parammap.Map
	if c.SourceMap != "" {
		if sourceMap, err = readMap(c.SourceMap); err != nil {
			return err
		}
	}
	if c.TargetMap != "" {
		if targetMap, err = readMap(c.TargetMap); err != nil {
			return err
		}
	}

	name, manufacturer := c.TargetName, c.TargetManufacturer
	if targetMap != nil {
		if name == "" {
			name = targetMap.PluginName
		}
		if manufacturer == "" {
			manufacturer = targetMap.Manufacturer
		}
	}
	if name == "" {
		return fmt.Errorf("no replacement plugin: give --target-map or --target-name")
	}
	target := chain.NewIdentity(name, manufacturer, c.TargetFormat, c.TargetUID)

	engine := translate.New(semantic.NewRegistry())
	out, report, err := engine.Translate(*slot, sourceMap, target, targetMap)
	if err != nil {
		return err
	}

	w := os.Stdout
	if c.Output != "" {
		w, err = os.Create(c.Output)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	if err := chain.EncodeSlot(w, &out); err != nil {
		return err
	}

	printReport(os.Stderr, slot.PluginName, name, report)
	return nil
}

// SemanticsCmd dumps the registry for curators writing maps by hand.
type SemanticsCmd struct {
	Category string `help:"Limit to one category (eq, compressor, limiter, reverb, delay, saturation, channel-strip, general)"`
}

func (c *SemanticsCmd) Run() error {
	registry := semantic.NewRegistry()
	roles := registry.All()
	if c.Category != "" {
		roles = registry.ByCategory(semantic.Category(c.Category))
		if len(roles) == 0 {
			return fmt.Errorf("unknown category %q", c.Category)
		}
	}
	printSemantics(os.Stdout, roles)
	return nil
}

func readMap(path string) (*parammap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := parammap.DecodeMap(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}
