package grubconfigs

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/jmarrero/bootupd/internal/system"
)

// FragmentSuffix selects drop-in files. The match is case-sensitive.
const FragmentSuffix = ".cfg"

// CollectFragments lists dropin and returns the names of all fragments,
// sorted by byte value so that repeated runs yield identical output.
// Entries without FragmentSuffix are skipped.
func CollectFragments(fs system.FileSystemManager, dropin *os.Root, log logrus.FieldLogger) ([]string, error) {
	names, err := fs.ListDirectory(dropin)
	if err != nil {
		return nil, ioError(StageCollect, dropin.Name(), err)
	}

	var fragments []string
	for _, name := range names {
		// names end up verbatim in "source" lines
		if !utf8.ValidString(name) {
			return nil, encodingError(StageCollect, fmt.Sprintf("%q", name))
		}
		if !strings.HasSuffix(name, FragmentSuffix) {
			log.Debugf("Ignoring %s", name)
			continue
		}
		fragments = append(fragments, name)
	}

	// Go string comparison is byte-wise, independent of locale
	slices.Sort(fragments)

	return fragments, nil
}

// sourceLine is the include directive emitted for one fragment.
func sourceLine(name string) string {
	return "source $prefix/" + name + "\n"
}
