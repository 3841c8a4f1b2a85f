/*
Command mdsite generates a static web site from a tree of Markdown files.

	mdsite [flags] [basepath]

Static assets are copied to the destination folder first, then every Markdown
file of the content tree is converted and poured into the HTML template. The
optional base path (default "/") is prefixed to every site-absolute link,
which is what hosting below a sub-path needs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/mdsite/core"
	"github.com/npillmayer/mdsite/output/site"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdsite.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdsite.cli")
}

var traceKeys = []string{"mdsite.cli", "mdsite.site", "mdsite.markdown", "mdsite.htmlnode"}

func main() {
	initDisplay()
	conf, err := configure(os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)

	cfg := site.DefaultConfig()
	pterm.Info.Printf("Generating site from %s to %s, base path is %s\n",
		cfg.ContentDir, cfg.DestDir, cfg.BasePath)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	report, err := site.Build(ctx, cfg)
	if err != nil {
		tracer().Errorf(err.Error())
		pterm.Error.Println("site generation failed")
		core.UserError(err)
		stop()
		os.Exit(3)
	}
	pterm.Success.Printf("%d pages generated\n", len(report.Pages))
	if len(report.BrokenLinks) > 0 {
		for _, b := range report.BrokenLinks {
			pterm.Warning.Printf("%s: broken link %s\n", b.Page, b.Link)
		}
		stop()
		os.Exit(4)
	}
}

// configure parses the command line into a configuration holding the site
// locations and the trace levels.
func configure(args []string) (testconfig.Conf, error) {
	flags := flag.NewFlagSet("mdsite", flag.ContinueOnError)
	tlevel := flags.String("trace", "Info", "Trace level [Debug|Info|Error]")
	content := flags.String(site.KeyContent, "content", "Folder of Markdown files")
	static := flags.String(site.KeyStatic, "static", "Folder of static assets")
	template := flags.String(site.KeyTemplate, "template.html", "HTML page template")
	dest := flags.String(site.KeyDest, "docs", "Output folder, will be re-created")
	checkLinks := flags.Bool(site.KeyCheckLinks, false, "Report site-absolute links without target")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 1 {
		return nil, core.Error(core.EINVALID, "at most one base path expected, have %d arguments", flags.NArg())
	}
	basepath := "/"
	if flags.NArg() == 1 {
		basepath = flags.Arg(0)
	}
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		site.KeyContent:    *content,
		site.KeyStatic:     *static,
		site.KeyTemplate:   *template,
		site.KeyDest:       *dest,
		site.KeyBasePath:   basepath,
		site.KeyCheckLinks: *checkLinks,
	}
	level := tracing.TraceLevelFromString(*tlevel).String()
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	return conf, nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
