package uploads

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// ImageType describes one accepted upload format.
type ImageType struct {
	Ext  string `yaml:"ext"`
	MIME string `yaml:"mime"`
	// Thumbnail marks formats the image library can decode. Formats
	// without it are stored verbatim and never thumbnailed.
	Thumbnail bool `yaml:"thumbnail"`
}

// Registry holds the image formats this build understands, loaded once at
// startup from the embedded YAML. Which of them are actually accepted is
// narrowed further by the ALLOWED_EXTENSIONS config.
type Registry struct {
	types map[string]ImageType
}

// NewRegistry loads the embedded image-type definitions.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/images.yaml")
	if err != nil {
		return nil, fmt.Errorf("read image types: %w", err)
	}

	var file struct {
		Types []ImageType `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal image types: %w", err)
	}

	r := &Registry{types: make(map[string]ImageType, len(file.Types))}
	for _, t := range file.Types {
		r.types[strings.ToLower(t.Ext)] = t
	}

	return r, nil
}

// Lookup returns the image type for an extension (without the dot,
// case-insensitive).
func (r *Registry) Lookup(ext string) (ImageType, bool) {
	t, ok := r.types[strings.ToLower(ext)]
	return t, ok
}
