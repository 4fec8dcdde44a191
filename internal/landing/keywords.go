package landing

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// KeywordTable maps language -> country -> SEO keyword pool for the
// meta-keywords tag.
type KeywordTable map[string]map[string][]string

func LoadKeywords() (KeywordTable, error) {
	var t KeywordTable
	if err := yaml.Unmarshal(keywordsYAML, &t); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	return t, nil
}

// Sample draws up to n keywords without replacement for a language/country
// pair. A missing table entry yields nil. The caller owns the random source;
// tests inject a seeded one.
func (t KeywordTable) Sample(lang, country string, n int, rnd *rand.Rand) []string {
	pool := t[lang][country]
	if len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	out := make([]string, 0, n)
	for _, i := range rnd.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
