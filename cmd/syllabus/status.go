package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

var (
	completeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	incompleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	optionalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#57068C"))
)

func doStatus(reg *syllabus.Registry, path string, watch bool) error {
	err := showStatus(reg, path)
	if err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchFile(ctx, path, func() {
		fmt.Println()
		err := showStatus(reg, path)
		if err != nil {
			fmt.Printf("%v %v\n", crossmark, err)
		}
	})
}

func showStatus(reg *syllabus.Registry, path string) error {
	s, err := readDraft(reg, path)
	if err != nil {
		return err
	}
	fmt.Print(formatStatus(s, syllabus.EvaluateAll(reg, s)))
	return nil
}

func formatStatus(s *syllabus.FormState, all []syllabus.SectionStatus) string {
	var sb strings.Builder
	title := s.Get(syllabus.CourseTitle)
	if title == "" {
		title = "Untitled syllabus"
	}
	sb.WriteString(titleStyle.Render(title) + "\n")

	done := 0
	for _, st := range all {
		var mark string
		switch st.Status {
		case syllabus.Complete:
			done++
			mark = completeStyle.Render(checkmark)
		case syllabus.Incomplete:
			mark = incompleteStyle.Render(crossmark)
		default:
			mark = optionalStyle.Render("-")
		}
		sb.WriteString(fmt.Sprintf("%v %-40v %v\n", mark, st.Section.Title, st.Status))
	}
	sb.WriteString(fmt.Sprintf("%d of %d sections complete\n", done, len(all)))
	return sb.String()
}

// watchFile calls onChange whenever the file at path is written or
// replaced. It blocks until ctx is done.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so watch the directory
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	err = w.Add(filepath.Dir(abs))
	if err != nil {
		return err
	}
	logging.Info("Watching %q", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Warning("Watch error: %v", err)
		}
	}
}
