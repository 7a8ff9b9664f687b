package general

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/csv"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/parquet"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/text"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const filesToShow = 5

var (
	ConflictFilesWithOldDialectData = "files with old dialect data"
)

// fileNameForDialect returns path of the file that output type writes for dialect, or empty string.
func fileNameForDialect(dir, outputType, dialect string) string {
	switch outputType {
	case "text":
		return text.FileName(dir, dialect)
	case "csv":
		return csv.FileName(dir, dialect)
	case "parquet":
		return parquet.FileName(dir, dialect)
	default:
		return ""
	}
}

// checkDirForDialect checks for existing files that would be overwritten by dialect output.
func checkDirForDialect(fs afero.Fs, dir, outputType, dialect string) (map[string][]string, error) {
	conflicts := make(map[string][]string) // key is cause, value is slice of file names

	fileName := fileNameForDialect(dir, outputType, dialect)
	if fileName == "" {
		return conflicts, nil
	}

	_, err := fs.Stat(fileName)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WithMessagef(errors.New(err.Error()), "failed to stat file: %s", fileName)
	}

	if err == nil {
		conflicts[ConflictFilesWithOldDialectData] = []string{fileName}
	}

	return conflicts, nil
}

// handleConflicts removes conflict files if forceConversion flag is true, otherwise returns pretty error.
func handleConflicts(fs afero.Fs, conflicts map[string][]string, forceConversion bool) error {
	for _, filePaths := range conflicts {
		if len(filePaths) == 0 {
			continue
		}

		if !forceConversion {
			return errors.New(formatConflicts(conflicts))
		}
	}

	if !forceConversion {
		return nil
	}

	for _, filePaths := range conflicts {
		if err := deleteAllFiles(fs, filePaths); err != nil {
			return errors.WithMessagef(err, "failed to delete conflict files: %s", filePaths)
		}
	}

	return nil
}

// formatConflicts makes pretty string from conflicts map.
func formatConflicts(conflicts map[string][]string) string {
	causes := make([]string, 0, len(conflicts))
	for cause := range conflicts {
		causes = append(causes, cause)
	}

	slices.Sort(causes)

	var sb strings.Builder

	sb.WriteString("conflict files found in output dir:\n")

	for _, cause := range causes {
		files := conflicts[cause]
		if len(files) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("cause: %s\n", cause))

		if len(files) > filesToShow {
			files = files[:filesToShow]
		}

		for _, file := range files {
			sb.WriteString(fmt.Sprintf("\t- %s\n", file))
		}
	}

	return sb.String()
}

func deleteAllFiles(fs afero.Fs, filePaths []string) error {
	for _, filePath := range filePaths {
		if err := fs.RemoveAll(filePath); err != nil {
			return errors.WithMessagef(errors.New(err.Error()), "failed to remove file: %s", filePath)
		}
	}

	return nil
}
