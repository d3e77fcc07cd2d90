// local.go: picks a random word from a word list

package word

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
)

var (
	//go:embed resources/five_letter_words.txt
	fileContent string

	ErrEmptyList = errors.New("word list has no usable words")
)

var _ Dictionary = (*localDictionary)(nil)

// localDictionary draws targets from wordsArray and validates against wordsMap
type localDictionary struct {
	wordsArray []string
	wordsMap   map[string]struct{}
}

// NewLocal returns a Dictionary backed by the embedded word list.
func NewLocal() *localDictionary {
	d, err := NewLocalFrom(strings.NewReader(fileContent))
	if err != nil {
		panic("embedded word list: " + err.Error())
	}
	return d
}

// NewLocalFrom reads one word per line from r. Lines that are not Length
// letters long are skipped.
func NewLocalFrom(r io.Reader) (*localDictionary, error) {
	d := localDictionary{
		wordsMap: make(map[string]struct{}),
	}
	if err := d.loadWords(r); err != nil {
		return nil, err
	}
	if len(d.wordsArray) == 0 {
		return nil, ErrEmptyList
	}
	return &d, nil
}

func (d *localDictionary) loadWords(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if !isWord(w) {
			continue
		}
		if _, ok := d.wordsMap[w]; ok {
			continue
		}
		d.wordsMap[w] = struct{}{}
		d.wordsArray = append(d.wordsArray, w)
	}
	return sc.Err()
}

func (d *localDictionary) TargetWord() string {
	return d.wordsArray[rand.IntN(len(d.wordsArray))]
}

func (d *localDictionary) IsAcceptable(candidate string) bool {
	_, ok := d.wordsMap[strings.ToUpper(candidate)]
	return ok
}

// Len returns the number of distinct words loaded
func (d *localDictionary) Len() int {
	return len(d.wordsArray)
}

func isWord(w string) bool {
	if len(w) != Length {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
