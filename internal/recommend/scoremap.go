// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

// ScoreMap maps an entity id to a score and remembers insertion order.
//
// Re-setting an existing id replaces its score but keeps its original
// position. Downstream tie-breaks depend on this order.
type ScoreMap struct {
	index  map[string]int
	ids    []string
	scores []float64
}

// NewScoreMap returns an empty map with room for n entries.
func NewScoreMap(n int) *ScoreMap {
	return &ScoreMap{
		index:  make(map[string]int, n),
		ids:    make([]string, 0, n),
		scores: make([]float64, 0, n),
	}
}

// Set stores score for id.
func (m *ScoreMap) Set(id string, score float64) {
	if i, ok := m.index[id]; ok {
		m.scores[i] = score
		return
	}
	m.index[id] = len(m.ids)
	m.ids = append(m.ids, id)
	m.scores = append(m.scores, score)
}

// Get returns the score for id and whether it is present.
func (m *ScoreMap) Get(id string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.index[id]
	if !ok {
		return 0, false
	}
	return m.scores[i], true
}

// Has reports whether id is present.
func (m *ScoreMap) Has(id string) bool {
	_, ok := m.Get(id)
	return ok
}

// Len returns the number of entries. A nil map is empty.
func (m *ScoreMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ids)
}

// Each calls fn for every entry in insertion order.
func (m *ScoreMap) Each(fn func(id string, score float64)) {
	if m == nil {
		return
	}
	for i, id := range m.ids {
		fn(id, m.scores[i])
	}
}

// IDs returns the ids in insertion order.
func (m *ScoreMap) IDs() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// Map returns an unordered copy, mostly useful in tests and logs.
func (m *ScoreMap) Map() map[string]float64 {
	out := make(map[string]float64, m.Len())
	m.Each(func(id string, score float64) {
		out[id] = score
	})
	return out
}
