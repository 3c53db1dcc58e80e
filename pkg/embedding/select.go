package embedding

import "fmt"

// probeText is the sentinel string used to verify a provider is usable.
const probeText = "hello"

// Candidate pairs a provider with a name for logging.
type Candidate struct {
	Name     string
	Provider EmbeddingProvider
}

// Probe issues a trivial embedding call to check the provider works.
func Probe(p EmbeddingProvider) error {
	if p == nil {
		return fmt.Errorf("nil provider")
	}
	res, err := p.Generate(probeText, TaskRetrievalQuery)
	if err != nil {
		return err
	}
	if res == nil || len(res.Embedding.Values) == 0 {
		return fmt.Errorf("probe returned empty embedding")
	}
	return nil
}

// Select probes candidates in order and returns the first usable one.
// Returns ("", nil) when every candidate fails, which callers must treat
// as degraded mode rather than an error.
func Select(candidates []Candidate) (string, EmbeddingProvider) {
	for _, c := range candidates {
		if c.Provider == nil {
			continue
		}
		if err := Probe(c.Provider); err != nil {
			continue
		}
		return c.Name, c.Provider
	}
	return "", nil
}
