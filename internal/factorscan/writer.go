package factorscan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Result is the factor set discovered for one input.
type Result struct {
	N        uint64
	Limit    int
	Factors  []uint64
	Complete bool
	Elapsed  time.Duration
}

type jsonResult struct {
	N         string   `json:"n"`
	Limit     int      `json:"limit"`
	Factors   []string `json:"factors"`
	Complete  bool     `json:"complete"`
	ElapsedMS float64  `json:"elapsedMs"`
}

func toJSON(r Result) jsonResult {
	out := jsonResult{
		N:         strconv.FormatUint(r.N, 10),
		Limit:     r.Limit,
		Factors:   make([]string, 0, len(r.Factors)),
		Complete:  r.Complete,
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
	}
	for _, d := range r.Factors {
		out.Factors = append(out.Factors, strconv.FormatUint(d, 10))
	}
	return out
}

// openOutput returns stdout for "-", or a created file.
func openOutput(path string, stdout io.Writer) (*bufio.Writer, func() error, error) {
	if path == "-" {
		w := bufio.NewWriter(stdout)
		return w, w.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating %s", path)
	}
	w := bufio.NewWriter(f)
	closeFn := func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return w, closeFn, nil
}

// WriteResults renders results in the given format.
func WriteResults(w io.Writer, format Format, results []Result) error {
	if format == FormatJSON {
		out := make([]jsonResult, 0, len(results))
		for _, r := range results {
			out = append(out, toJSON(r))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(out), "encoding results")
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "Factors of %d: %v\n", r.N, r.Factors); err != nil {
			return errors.Wrap(err, "writing results")
		}
	}
	return nil
}
