// Package browse implements the interactive libman index browser
// behind "lm browse".
package browse

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/libman-dev/libman/internal/manifest"
)

// Item is one package entry in the browser, with its package and
// library documents resolved eagerly so the detail pane renders
// without further I/O.
type Item struct {
	Name string
	Path string
	// Pkg is nil when loading the package file failed; Err then holds
	// the load error.
	Pkg       *manifest.Package
	Libraries []*manifest.Library
	Err       error
}

type indexLoadedMsg struct {
	items []Item
}

type loadFailedMsg struct {
	err error
}

// Model is the bubbletea model for the index browser.
type Model struct {
	indexPath string
	keys      KeyMap
	help      help.Model

	items    []Item
	selected int
	loading  bool
	err      error

	width  int
	height int
}

// New creates a browser over the given index file.
func New(indexPath string) *Model {
	return &Model{
		indexPath: indexPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		loading:   true,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadIndex()
}

// loadIndex reads the index and every package it points at. Broken
// package files become items carrying their error instead of aborting
// the whole browser.
func (m *Model) loadIndex() tea.Cmd {
	indexPath := m.indexPath
	return func() tea.Msg {
		idx, err := manifest.LoadIndex(indexPath)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		items := make([]Item, 0, len(idx.Entries))
		for _, entry := range idx.Entries {
			items = append(items, loadItem(entry))
		}
		return indexLoadedMsg{items: items}
	}
}

func loadItem(entry manifest.IndexEntry) Item {
	item := Item{Name: entry.Name, Path: entry.Path}
	pkg, err := manifest.LoadPackage(entry.Path)
	if err != nil {
		item.Err = err
		return item
	}
	item.Pkg = pkg
	for _, libPath := range pkg.Libraries {
		lib, err := manifest.LoadLibrary(libPath)
		if err != nil {
			item.Err = err
			continue
		}
		item.Libraries = append(item.Libraries, lib)
	}
	return item
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case indexLoadedMsg:
		m.items = msg.items
		m.loading = false
		m.err = nil
		if m.selected >= len(m.items) {
			m.selected = 0
		}
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadIndex()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// Selected returns the currently selected item, or nil when the list
// is empty.
func (m *Model) Selected() *Item {
	if len(m.items) == 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
