package minicalc

import (
	"io"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/minicalc/statik"
)

//go:generate statik -src=samples

const sampleExt = ".calc"

// Samples lists the names of the bundled sample programs.
func Samples() ([]string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != sampleExt {
			continue
		}
		names = append(names, strings.TrimSuffix(fi.Name(), sampleExt))
	}
	sort.Strings(names)
	return names, nil
}

// LoadSample returns the source of the named bundled sample.
func LoadSample(name string) (string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return "", err
	}
	f, err := statikFS.Open(path.Join("/", name+sampleExt))
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
