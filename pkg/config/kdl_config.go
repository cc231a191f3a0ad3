package config

import (
	"fmt"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
)

// LoadKDL loads configuration from .fuzzymatch.kdl in dir. It returns
// nil without error when the file does not exist.
func LoadKDL(dir string) (*Config, error) {
	path := configPath(dir, KDLFileName)
	content, err := readIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KDLFileName, err)
	}
	if content == nil {
		return nil, nil
	}

	debug.LogConfig("loading %s\n", path)
	return parseKDL(string(content))
}

// parseKDL applies the nodes of content over Default. Unknown nodes are
// ignored and logged.
//
//	extract { scorer "wratio"; score_cutoff 60; limit 3 }
//	dedupe { threshold 80; policy "first" }
//	processing { unicode "nfkc"; stem true; stem_exclusions "api" "http" }
//	batch { workers 4 }
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "extract":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "scorer":
					assignString(cn, &cfg.Extract.Scorer)
				case "score_cutoff":
					assignInt(cn, &cfg.Extract.ScoreCutoff)
				case "limit":
					assignInt(cn, &cfg.Extract.Limit)
				default:
					logUnknown("extract", cn)
				}
			}
		case "dedupe":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "scorer":
					assignString(cn, &cfg.Dedupe.Scorer)
				case "threshold":
					assignInt(cn, &cfg.Dedupe.Threshold)
				case "policy":
					assignString(cn, &cfg.Dedupe.Policy)
				default:
					logUnknown("dedupe", cn)
				}
			}
		case "processing":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "full_process":
					assignBool(cn, &cfg.Processing.FullProcess)
				case "force_ascii":
					assignBool(cn, &cfg.Processing.ForceASCII)
				case "unicode":
					assignString(cn, &cfg.Processing.Unicode)
				case "stem":
					assignBool(cn, &cfg.Processing.Stem)
				case "stem_min_length":
					assignInt(cn, &cfg.Processing.StemMinLength)
				case "stem_exclusions":
					cfg.Processing.StemExclusions = collectStringArgs(cn)
				default:
					logUnknown("processing", cn)
				}
			}
		case "batch":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "workers":
					assignInt(cn, &cfg.Batch.Workers)
				default:
					logUnknown("batch", cn)
				}
			}
		default:
			logUnknown("", n)
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

// collectStringArgs reads inline arguments (stem_exclusions "a" "b") or,
// failing that, a block of child nodes (stem_exclusions { "a"; "b" }).
func collectStringArgs(n *document.Node) []string {
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignString(n *document.Node, target *string) {
	if s, ok := firstStringArg(n); ok {
		*target = s
	} else {
		logInvalid(n, "string")
	}
}

func assignInt(n *document.Node, target *int) {
	if v, ok := firstIntArg(n); ok {
		*target = v
	} else {
		logInvalid(n, "number")
	}
}

func assignBool(n *document.Node, target *bool) {
	if b, ok := firstBoolArg(n); ok {
		*target = b
	} else {
		logInvalid(n, "boolean")
	}
}

func logInvalid(n *document.Node, want string) {
	var got interface{}
	if len(n.Arguments) > 0 {
		got = n.Arguments[0].Value
	}
	debug.LogConfig("invalid value for '%s', expected %s but got %T\n", nodeName(n), want, got)
}

func logUnknown(section string, n *document.Node) {
	if section == "" {
		debug.LogConfig("ignoring unknown node '%s'\n", nodeName(n))
		return
	}
	debug.LogConfig("ignoring unknown node '%s' in %s\n", nodeName(n), section)
}
