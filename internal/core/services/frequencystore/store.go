/*
Package frequencystore implements the ports.FrequencyStore interface.

Counts are accumulated in a byte-keyed map while the source is read and then
frozen into sorted item and count slices plus an immutable SlimTrie keyed by item.
Point lookups go through the trie; ordered reports walk the sorted slices.
After Load returns nothing mutates the store.
*/
package frequencystore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/openacid/slim/encode"
	"github.com/openacid/slim/trie"
)

var countCodec = encode.I32{}

// Store holds frozen item counts. The zero value is an empty store.
type Store struct {
	index  *trie.SlimTrie // nil when no items were counted
	items  []string       // ascending, byte-wise
	counts []int32        // counts[i] belongs to items[i]
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

/*
Load reads newline-separated items from r and returns the frozen store.
Only the trailing '\n' is stripped from each line; empty lines are skipped.

Load always returns a usable store. If reading fails part way, the store keeps
every complete line read before the failure and the error wraps grocery.ErrIOUnavailable.
*/
func Load(r io.Reader) (*Store, error) {
	counts := make(map[string]int)
	reader := bufio.NewReader(r)

	var readErr error
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			// The partial line is incomplete, drop it.
			readErr = fmt.Errorf("%w: reading items: %w", grocery.ErrIOUnavailable, err)
			break
		}
		line = strings.TrimSuffix(line, "\n")
		if line != "" {
			counts[line]++
		}
		if err != nil {
			break
		}
	}

	store, err := freeze(counts)
	if err != nil {
		return New(), err
	}
	return store, readErr
}

// LoadFrom opens src and loads it. An open failure yields an empty store.
func LoadFrom(src ports.ItemSource) (*Store, error) {
	rc, err := src.Open()
	if err != nil {
		if !errors.Is(err, grocery.ErrIOUnavailable) {
			err = fmt.Errorf("%w: %w", grocery.ErrIOUnavailable, err)
		}
		return New(), fmt.Errorf("opening %s: %w", src.GetSourceIdentifier(), err)
	}
	defer rc.Close()

	store, err := Load(rc)
	if err != nil {
		return store, fmt.Errorf("loading %s: %w", src.GetSourceIdentifier(), err)
	}
	return store, nil
}

// freeze builds the sorted index from the accumulated counts.
func freeze(counts map[string]int) (*Store, error) {
	if len(counts) == 0 {
		return New(), nil
	}

	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.Strings(items)

	values := make([]int32, len(items))
	for i, item := range items {
		values[i] = int32(counts[item])
	}

	// Neighbouring items often share a count, so values must not be deduplicated.
	index, err := trie.NewSlimTrie(countCodec, items, values, trie.Opt{
		Complete:   trie.Bool(true),
		DedupValue: trie.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("building frequency index: %w", err)
	}
	return &Store{index: index, items: items, counts: values}, nil
}

// GetFrequency implements the ports.FrequencyStore interface.
func (s *Store) GetFrequency(item string) int {
	if s.index == nil || item == "" {
		return 0
	}
	v, found := s.index.Get(item)
	if !found {
		return 0
	}
	count, ok := v.(int32)
	if !ok {
		return 0
	}
	return int(count)
}

// AllFrequencies implements the ports.FrequencyStore interface.
func (s *Store) AllFrequencies() []grocery.ItemFrequency {
	frequencies := make([]grocery.ItemFrequency, len(s.items))
	for i, item := range s.items {
		frequencies[i] = grocery.ItemFrequency{Item: item, Count: int(s.counts[i])}
	}
	return frequencies
}

// RenderHistogram implements the ports.FrequencyStore interface.
func (s *Store) RenderHistogram() []grocery.HistogramBar {
	frequencies := s.AllFrequencies()
	bars := make([]grocery.HistogramBar, len(frequencies))
	for i, f := range frequencies {
		bars[i] = grocery.HistogramBar{
			Item: f.Item,
			Bar:  strings.Repeat(grocery.HistogramMarker, f.Count),
		}
	}
	return bars
}

// WriteBackup implements the ports.FrequencyStore interface.
func (s *Store) WriteBackup(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, f := range s.AllFrequencies() {
		if _, err := bw.WriteString(f.Item + " " + strconv.Itoa(f.Count) + "\n"); err != nil {
			return fmt.Errorf("%w: writing backup line for %q: %w", grocery.ErrIOUnavailable, f.Item, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flushing backup: %w", grocery.ErrIOUnavailable, err)
	}
	return nil
}

// Len implements the ports.FrequencyStore interface.
func (s *Store) Len() int {
	return len(s.items)
}

var _ ports.FrequencyStore = (*Store)(nil)
