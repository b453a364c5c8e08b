// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/portobello/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const emptyCell = "-"

var tableHeaders = []string{"KEY", "TYPE", "GLOBAL", "USER"}

// RenderSnapshot renders the entries as a table followed by a footer with
// the fetch time. A stale snapshot gets a notice above the table.
func RenderSnapshot(snapshot models.Snapshot) string {
	rows := make([][]string, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		rows = append(rows, entryRow(entry))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	var b strings.Builder
	if snapshot.Stale {
		b.WriteString(staleStyle.Render("server unreachable, showing the last stored configuration"))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(footer(snapshot)))

	return b.String()
}

func entryRow(entry models.Entry) []string {
	user := emptyCell
	if entry.User != nil {
		user = formatItems(entry.User.Items)
	}

	return []string{
		entry.Key.Name,
		typeCell(entry.Key),
		formatItems(entry.ItemsGlobal),
		user,
	}
}

// typeCell renders the type name. "[]" marks keys holding a list and "?"
// marks optional keys.
func typeCell(key models.Key) string {
	name := string(key.Type.Name)
	if key.AllowsMultiple {
		name += "[]"
	}
	if key.Optional {
		name += "?"
	}
	return name
}

func formatItems(items models.ItemSet) string {
	if len(items) == 0 {
		return emptyCell
	}

	values := make([]string, 0, len(items))
	for _, v := range items.Values() {
		values = append(values, v.String())
	}
	return strings.Join(values, ", ")
}

func footer(snapshot models.Snapshot) string {
	var b strings.Builder
	b.WriteString(pluralEntries(len(snapshot.Entries)))
	if !snapshot.FetchedAt.IsZero() {
		b.WriteString(", fetched at ")
		b.WriteString(snapshot.FetchedAt.Local().Format(time.DateTime))
	}
	return b.String()
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
