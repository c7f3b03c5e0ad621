package entities

import "strings"

// FilterProjects keeps the consumers whose name contains text, ignoring case.
// Artifacts left without consumers are dropped. An empty text returns the input.
func FilterProjects(projects []Project, text string) []Project {
	if strings.TrimSpace(text) == "" {
		return projects
	}

	needle := strings.ToLower(text)
	var result []Project
	for _, project := range projects {
		var matching []RefAssembly
		for _, consumer := range project.Consumers {
			if strings.Contains(strings.ToLower(consumer.Name), needle) {
				matching = append(matching, consumer)
			}
		}
		if len(matching) == 0 {
			continue
		}
		filtered := project
		filtered.Consumers = matching
		result = append(result, filtered)
	}
	return result
}

// FilterPackageSpecs is FilterProjects for package artifacts.
func FilterPackageSpecs(specs []PackageSpec, text string) []PackageSpec {
	if strings.TrimSpace(text) == "" {
		return specs
	}

	needle := strings.ToLower(text)
	var result []PackageSpec
	for _, spec := range specs {
		var matching []RefPackage
		for _, consumer := range spec.Consumers {
			if strings.Contains(strings.ToLower(consumer.Name), needle) {
				matching = append(matching, consumer)
			}
		}
		if len(matching) == 0 {
			continue
		}
		filtered := spec
		filtered.Consumers = matching
		result = append(result, filtered)
	}
	return result
}
