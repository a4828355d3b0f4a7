package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sentinel-lite/sentinel/internal/errors"
)

// Keys lists the settable config keys in file order.
var Keys = []string{
	"version",
	"api.url",
	"api.timeout",
	"refresh.interval",
	"notify.ttl",
	"output.color",
	"log_file",
}

// fileConfig is the on-disk shape. Durations are written as strings ("30s")
// rather than yaml.v3's integer nanoseconds.
type fileConfig struct {
	Version int `yaml:"version"`
	API     struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Refresh struct {
		Interval string `yaml:"interval"`
	} `yaml:"refresh"`
	Notify struct {
		TTL string `yaml:"ttl"`
	} `yaml:"notify"`
	Output struct {
		Color string `yaml:"color"`
	} `yaml:"output"`
	LogFile string `yaml:"log_file"`
}

func toFile(cfg *Config) fileConfig {
	var f fileConfig
	f.Version = cfg.Version
	f.API.URL = cfg.API.URL
	f.API.Timeout = cfg.API.Timeout.String()
	f.Refresh.Interval = cfg.Refresh.Interval.String()
	f.Notify.TTL = cfg.Notify.TTL.String()
	f.Output.Color = cfg.Output.Color
	f.LogFile = cfg.LogFile
	return f
}

// Marshal encodes cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toFile(cfg)); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	return buf.Bytes(), nil
}

// WriteDefault writes DefaultConfig to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Pass --force to overwrite it")
		}
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// Set updates one dotted key in the config file at path, keeping the rest of
// the document (including comments) intact. The file is created when
// missing. The result must load and validate or nothing is written.
func Set(path, key, value string) error {
	if !isKey(key) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown config key '%s'", key),
			"Known keys: "+strings.Join(sortedKeys(), ", "))
	}

	var root yaml.Node
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to parse config file", "Check the YAML syntax in "+path)
		}
	case os.IsNotExist(err):
	default:
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file", "Check file permissions")
	}

	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Config file must be a YAML mapping", "Check "+path)
	}

	node := root.Content[0]
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		child := findMapValue(node, part)
		if child == nil || child.Kind != yaml.MappingNode {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			setMapValue(node, part, child)
		}
		node = child
	}
	setMapValue(node, parts[len(parts)-1], &yaml.Node{Kind: yaml.ScalarNode, Value: value})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	enc.Close()

	tmp := path + ".tmp"
	if err := writeFile(tmp, buf.Bytes()); err != nil {
		return err
	}
	cfg, err := Load(tmp)
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to write config file", "Check file permissions")
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory", "Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file", "Check permissions on "+path)
	}
	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// setMapValue replaces the value for key, or appends the pair.
func setMapValue(node *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(node.Content)-1; i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			value.HeadComment = node.Content[i+1].HeadComment
			value.LineComment = node.Content[i+1].LineComment
			node.Content[i+1] = value
			return
		}
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value)
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func sortedKeys() []string {
	out := append([]string(nil), Keys...)
	sort.Strings(out)
	return out
}
