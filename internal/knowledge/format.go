// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"bufio"
	"io"
	"strings"
)

// Read loads entries from r. The format is line oriented:
//
//	[who]
//	Ada Lovelace=A mathematician.
//
// A bracketed line sets the current category. A line containing '=' under a
// non-empty category is split on the first '=' and stored with Put. Other
// lines are skipped, as are entries Put rejects. Read returns the number of
// entries stored. It fails only when r does, and never closes r.
func (s *Store) Read(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	var (
		category string
		count    int
	)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if name, ok := parseHeader(line); ok {
				category = name
			} else if category != "" {
				if entity, answer, ok := strings.Cut(line, "="); ok {
					if s.Put(category, entity, answer) == nil {
						count++
					}
				}
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, ioError(err, "reading knowledge after %d entries", count)
		}
	}
}

// parseHeader reports whether line is a [name] section header and returns
// the name between the brackets.
func parseHeader(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

// Write saves every non-empty category to w in category order, one
// entity=answer line per entry in insertion order, with a blank line between
// sections. Write never closes w.
func (s *Store) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	first := true
	for _, sec := range s.sections {
		if len(sec.entries) == 0 {
			continue
		}
		if !first {
			bw.WriteByte('\n')
		}
		first = false

		bw.WriteString("[" + sec.name + "]\n")
		for _, e := range sec.entries {
			bw.WriteString(e.Entity + "=" + e.Answer + "\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return ioError(err, "writing knowledge")
	}
	return nil
}
