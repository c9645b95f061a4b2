package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sorttable"
	"github.com/goliatone/go-sorttable/internal/prompt"
	"github.com/goliatone/go-sorttable/pkg/config"
	"github.com/goliatone/go-sorttable/pkg/orchestrator"
	"github.com/goliatone/go-sorttable/pkg/render"
	"github.com/goliatone/go-sorttable/pkg/renderers/page"
	"github.com/goliatone/go-sorttable/pkg/source"
	"github.com/goliatone/go-sorttable/pkg/table"
)

const httpTimeout = 30 * time.Second

// options holds the flags shared by every subcommand.
type options struct {
	source      string
	format      string
	sheet       string
	configPath  string
	renderer    string
	tableID     string
	sortIndex   int
	title       string
	interactive bool
	sanitize    bool
	methods     []string
	columns     []string
	limit       int

	// driver overrides the terminal prompt driver in tests.
	driver prompt.Driver
	cmd    *cobra.Command
}

func (o *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.source, "source", "s", "", "table source: file path or http(s) URL")
	flags.StringVar(&o.format, "format", "", "source format: yaml, json, xlsx, openapi (default: from extension)")
	flags.StringVar(&o.sheet, "sheet", "", "spreadsheet sheet to read (default: first sheet)")
	flags.StringVarP(&o.configPath, "config", "c", "", "config file (.yaml, .toml or .json)")
	flags.StringVarP(&o.renderer, "renderer", "r", page.Name, "renderer: page or fragment")
	flags.StringVar(&o.tableID, "table-id", "", "id of the table element")
	flags.IntVar(&o.sortIndex, "sort-index", 0, "column sorted on load; negative leaves the table unsorted")
	flags.StringVar(&o.title, "title", "", "page title")
	flags.BoolVarP(&o.interactive, "interactive", "i", false, "prompt for table id, sort column and title")
	flags.BoolVar(&o.sanitize, "sanitize", false, "strip unsafe markup from cell values")
	flags.StringSliceVar(&o.methods, "methods", nil, "OpenAPI sources: only list these HTTP methods")
	flags.StringSliceVar(&o.columns, "columns", nil, "keep only these columns, in this order")
	flags.IntVar(&o.limit, "limit", 0, "render at most this many rows")
	o.cmd = cmd
}

func (o *options) changed(name string) bool {
	if o.cmd == nil {
		return false
	}
	flag := o.cmd.PersistentFlags().Lookup(name)
	return flag != nil && flag.Changed
}

// pipeline is a prepared render: settings are resolved once, the source is
// re-read on every call.
type pipeline struct {
	registry  *render.Registry
	documents *orchestrator.Orchestrator
	renderers *orchestrator.Orchestrator
	request   orchestrator.Request
}

func (o *options) prepare(ctx context.Context) (*pipeline, error) {
	if strings.TrimSpace(o.source) == "" {
		return nil, fmt.Errorf("--source is required")
	}

	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	o.applyFlags(cfg)

	src, err := source.Resolve(o.source)
	if err != nil {
		return nil, err
	}
	format, err := source.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	src = source.WithFormat(src, format)

	var transformers []orchestrator.Transformer
	if len(o.columns) > 0 {
		transformers = append(transformers, orchestrator.SelectColumns(o.columns...))
	}
	if o.limit > 0 {
		transformers = append(transformers, orchestrator.LimitRows(o.limit))
	}

	documents := orchestrator.New(
		orchestrator.WithLoader(sorttable.NewLoader(source.WithHTTPFallback(httpTimeout))),
		orchestrator.WithDecoder(sorttable.NewDecoder(source.WithSheet(o.sheet), source.WithMethods(o.methods...))),
		orchestrator.WithTransformers(transformers...),
	)
	req := orchestrator.Request{Source: src}

	if o.interactive {
		doc, err := documents.Document(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := o.ask(ctx, cfg, doc); err != nil {
			return nil, err
		}
	}

	themeCfg, err := cfg.ThemeConfig()
	if err != nil {
		return nil, err
	}

	var tableOpts []table.Option
	if cfg.Sanitize {
		tableOpts = append(tableOpts, table.WithSanitizer(table.BluemondaySanitizer()))
	}
	var pageOpts []page.Option
	if len(cfg.Page.WidgetScripts) > 0 {
		pageOpts = append(pageOpts, page.WithWidgetScripts(cfg.Page.WidgetScripts...))
	}
	if len(cfg.Page.Stylesheets) > 0 {
		pageOpts = append(pageOpts, page.WithStylesheets(cfg.Page.Stylesheets...))
	}
	if cfg.Page.Lang != "" {
		pageOpts = append(pageOpts, page.WithLang(cfg.Page.Lang))
	}

	registry, err := orchestrator.NewRegistry(cfg.TableConfig(), tableOpts, pageOpts)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		registry:  registry,
		documents: documents,
		renderers: orchestrator.New(orchestrator.WithRegistry(registry)),
		request: orchestrator.Request{
			Source:   src,
			Renderer: o.renderer,
			RenderOptions: render.RenderOptions{
				Init:  cfg.InitOptions(),
				Title: cfg.Page.Title,
				Theme: themeCfg,
			},
		},
	}, nil
}

// applyFlags lets explicitly set flags win over the config file.
func (o *options) applyFlags(cfg *config.Config) {
	if o.tableID != "" {
		cfg.Table.TableID = o.tableID
	}
	if o.changed("sort-index") {
		setSortIndex(cfg, o.sortIndex)
	}
	if o.title != "" {
		cfg.Page.Title = o.title
	}
	if o.changed("sanitize") {
		cfg.Sanitize = o.sanitize
	}
}

func (o *options) ask(ctx context.Context, cfg *config.Config, doc table.Document) error {
	driver := o.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(nil, nil, nil)
	}

	current := 0
	switch {
	case cfg.Init.NoInitialSort:
		current = -1
	case cfg.Init.SortIndex != nil:
		current = *cfg.Init.SortIndex
	}

	var columns prompt.Columns
	for _, h := range doc.Headers {
		columns = append(columns, headerLabel(h))
	}

	answers, err := prompt.Ask(ctx, driver, prompt.Settings{
		TableID:   cfg.TableConfig().TableID,
		SortIndex: current,
		Title:     cfg.Page.Title,
		Sanitize:  cfg.Sanitize,
	}, columns)
	if err != nil {
		return err
	}

	cfg.Table.TableID = answers.TableID
	setSortIndex(cfg, answers.SortIndex)
	cfg.Page.Title = answers.Title
	cfg.Sanitize = answers.Sanitize
	return nil
}

func (p *pipeline) render(ctx context.Context) ([]byte, string, error) {
	doc, err := p.documents.Document(ctx, p.request)
	if err != nil {
		return nil, "", err
	}
	req := p.request
	req.Document = &doc

	out, err := p.renderers.Generate(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return out, p.contentType(), nil
}

func (p *pipeline) contentType() string {
	name := p.request.Renderer
	if name == "" {
		name = page.Name
	}
	if r, err := p.registry.Get(name); err == nil {
		return r.ContentType()
	}
	return "text/html; charset=utf-8"
}

func setSortIndex(cfg *config.Config, idx int) {
	if idx < 0 {
		cfg.Init.NoInitialSort = true
		cfg.Init.SortIndex = nil
		return
	}
	cfg.Init.NoInitialSort = false
	cfg.Init.SortIndex = table.Int(idx)
}

func headerLabel(h table.HeaderContent) string {
	var label string
	switch v := h.(type) {
	case table.Plain:
		label = string(v)
	case table.Decorated:
		label = v.Value
	case table.HeaderCell:
		label = v.Value
	}
	if strings.TrimSpace(label) == "" {
		return "(blank)"
	}
	return label
}
