package oestest

import "github.com/dustinxie/lockfree"

// journal records every fixture a scenario writes, keyed by record id, so
// tests can assert on exactly what was seeded. Scenarios may run from
// multiple goroutines.
type journal struct {
	entries lockfree.HashMap
}

func newJournal() *journal {
	return &journal{entries: lockfree.NewHashMap()}
}

func (j *journal) record(id string, fixture map[string]string) {
	j.entries.Set(id, fixture)
}

func (j *journal) get(id string) (map[string]string, bool) {
	v, ok := j.entries.Get(id)
	if !ok || v == nil {
		return nil, false
	}

	return v.(map[string]string), true
}

func (j *journal) ids() []string {
	keys := []string{}

	j.entries.Lock()
	for k, _, ok := j.entries.Next(); ok; k, _, ok = j.entries.Next() {
		keys = append(keys, k.(string))
	}
	j.entries.Unlock()

	return keys
}
