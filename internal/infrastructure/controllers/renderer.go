package controllers

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dryRunStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// startSpinner shows a spinner while a scan runs. The returned stop function
// is safe to call with a nil error.
func startSpinner(text string) func(err error) {
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(false).Start(text)
	if err != nil {
		logger.Debugf("Spinner unavailable: %v", err)
		return func(error) {}
	}
	return func(scanErr error) {
		if scanErr != nil {
			spinner.Fail(scanErr.Error())
			return
		}
		spinner.Success(text)
	}
}

func renderTree(title string, list pterm.LeveledList) {
	if len(list) == 0 {
		pterm.Info.Printfln("%s: nothing found", title)
		return
	}
	root := putils.TreeFromLeveledList(list)
	root.Text = title
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		logger.Errorf("Failed to render tree: %v", err)
	}
}

func renderProjectTree(title string, projects []entities.Project) {
	var list pterm.LeveledList
	for _, project := range projects {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: describeProject(project)})
		for _, consumer := range project.Consumers {
			list = append(list, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%s [ref %s] %s", consumer.Name, consumer.RefVersion, consumer.Path),
			})
		}
	}
	renderTree(title, list)
}

func renderPackageTree(title string, specs []entities.PackageSpec) {
	var list pterm.LeveledList
	for _, spec := range specs {
		text := spec.Name
		if spec.NugetVersion != "" {
			text = fmt.Sprintf("%s %s", spec.Name, spec.NugetVersion)
		}
		list = append(list, pterm.LeveledListItem{Level: 0, Text: text})
		for _, consumer := range spec.Consumers {
			list = append(list, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%s [ref %s] %s", consumer.Name, consumer.RefVersion, consumer.Path),
			})
		}
	}
	renderTree(title, list)
}

func describeProject(project entities.Project) string {
	if project.AssemblyVersion == "" {
		return project.Name
	}
	return fmt.Sprintf("%s %s (file %s, informational %s)",
		project.Name, project.AssemblyVersion, project.FileVersion, project.InformationalVersion)
}

// renderResults prints one table row per result followed by a summary line.
func renderResults[T any](
	results []entities.UpdateResult[T],
	dryRun bool,
	header []string,
	row func(T) []string,
) {
	data := pterm.TableData{append(append([]string{"Artifact"}, header...), "Status")}
	for _, result := range results {
		status := "ok"
		if result.HasError() {
			status = result.Error
		}
		data = append(data, append(append([]string{result.SourceArtifactName}, row(result.Data)...), status))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logger.Errorf("Failed to render results: %v", err)
	}
	fmt.Println(summaryLine(len(results), entities.CountErrors(results), dryRun))
}

func summaryLine(total, failed int, dryRun bool) string {
	switch {
	case dryRun:
		return dryRunStyle.Render(fmt.Sprintf("Dry run: %d item(s) would be updated", total))
	case failed > 0:
		return failureStyle.Render(fmt.Sprintf("%d of %d item(s) failed", failed, total))
	default:
		return successStyle.Render(fmt.Sprintf("%d item(s) updated", total))
	}
}
