// Package rules loads and invokes the declarative JSONata rules that map
// legacy parts to their target shapes. Rules are opaque to the engine: each
// receives {part, languageCode, explanation} and returns the fully-formed
// converted part.
package rules

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsonata "github.com/blues/jsonata-go"

	"github.com/edforge/qconvert/internal/question"
)

//go:embed rules/*.jsonata
var builtin embed.FS

// ruleNames maps the 13 legacy part types to the 12 target-shape rules.
// frq and frq_ai share one rule.
var ruleNames = map[question.PartType]string{
	question.TypeMatching: "matching",
	question.TypeMCQ:      "mcq",
	question.TypeMRQ:      "mrq",
	question.TypeOpinion:  "opinion",
	question.TypeCounting: "counting",
	question.TypeOQ:       "ordering",
	question.TypeString:   "string",
	question.TypeFRQ:      "frq",
	question.TypeFRQAI:    "frq",
	question.TypeGapText:  "gap",
	question.TypeInputBox: "input",
	question.TypePuzzle:   "puzzle",
	question.TypeGMRQ:     "gmrq",
}

// RuleName returns the rule selected for a part type.
func RuleName(t question.PartType) (string, bool) {
	name, ok := ruleNames[t]
	return name, ok
}

// Registry resolves part types to compiled transformation rules. Rules are
// compiled once and cached; an override directory takes precedence over the
// embedded rule set, so externally authored rules can be swapped in without
// rebuilding.
type Registry struct {
	dir string

	mu    sync.Mutex
	cache map[string]*jsonata.Expr
}

// NewRegistry returns a Registry serving the embedded rule set.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]*jsonata.Expr)}
}

// NewRegistryFromDir returns a Registry that prefers <dir>/<rule>.jsonata
// over the embedded rules.
func NewRegistryFromDir(dir string) *Registry {
	return &Registry{dir: dir, cache: make(map[string]*jsonata.Expr)}
}

// Eval applies the rule for partType to {part, languageCode, explanation}
// and returns the converted part object. A nil explanation is passed
// through as null.
func (r *Registry) Eval(partType question.PartType, part question.Part, languageCode string, explanation *string) (map[string]any, error) {
	name, ok := ruleNames[partType]
	if !ok {
		return nil, fmt.Errorf("no rule for part type %q", partType)
	}
	expr, err := r.expr(name)
	if err != nil {
		return nil, err
	}

	var expl any
	if explanation != nil {
		expl = *explanation
	}
	result, err := expr.Eval(map[string]any{
		"part":         map[string]any(part),
		"languageCode": languageCode,
		"explanation":  expl,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate rule %q: %w", name, err)
	}

	obj, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rule %q returned %T, expected an object", name, result)
	}
	return obj, nil
}

// expr returns the compiled rule, loading and caching it on first use.
func (r *Registry) expr(name string) (*jsonata.Expr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache[name]; ok {
		return e, nil
	}

	src, err := r.source(name)
	if err != nil {
		return nil, err
	}
	e, err := jsonata.Compile(string(src))
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", name, err)
	}
	r.cache[name] = e
	return e, nil
}

func (r *Registry) source(name string) ([]byte, error) {
	filename := name + ".jsonata"
	if r.dir != "" {
		src, err := os.ReadFile(filepath.Join(r.dir, filename))
		if err == nil {
			return src, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read rule %q: %w", name, err)
		}
	}
	src, err := builtin.ReadFile("rules/" + filename)
	if err != nil {
		return nil, fmt.Errorf("load rule %q: %w", name, err)
	}
	return src, nil
}
