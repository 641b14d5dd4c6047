package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/portfolio-planner/internal/domain"
)

// GenerateReport writes the report in the requested format into dir and
// returns the written file names. "all" writes every registered format.
func GenerateReport(report *domain.PlanReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range AvailableFormatterNames() {
			f := GetFormatterByName(name)
			if name == "growth-csv" && !report.HasGrowth() {
				continue
			}
			file, err := WriteFormatted(f, report, dir, ExtensionFor(name))
			if err != nil {
				return files, fmt.Errorf("%s: %w", name, err)
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	file, err := WriteFormatted(f, report, dir, ExtensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}
