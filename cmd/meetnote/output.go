package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	meetingDto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

func render(w io.Writer, format string, resp *meetingDto.NotesResponse) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(resp)
	default:
		return renderText(w, resp)
	}
}

func renderText(w io.Writer, resp *meetingDto.NotesResponse) error {
	if resp == nil || resp.View == nil {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle := r.NewStyle().Bold(true)
	dimStyle := r.NewStyle().Faint(true)

	v := resp.View
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(v.Title))
	sb.WriteString("\n\n")

	for _, row := range [][2]string{
		{"회의 일시", v.Date},
		{"회의 주관자", v.Lead},
		{"참석자", v.Attendees},
		{"회의 목적", v.Purpose},
	} {
		fmt.Fprintf(&sb, "%s  %s\n", labelStyle.Render(row[0]), row[1])
	}

	for _, section := range []struct {
		label string
		lines []string
	}{
		{"아젠다", v.Agenda},
		{"결정 사항", v.Decisions},
		{"후속 액션", v.FollowUps},
	} {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(section.label))
		sb.WriteString("\n")
		for _, line := range section.lines {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}

	sb.WriteString("\n")
	switch {
	case resp.PageURL != "":
		fmt.Fprintf(&sb, "Notion: %s\n", resp.PageURL)
	default:
		sb.WriteString(dimStyle.Render("Notion: not written"))
		sb.WriteString("\n")
	}
	if resp.Notified {
		sb.WriteString("Slack: sent\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
