package sequence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastaText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">contig_%d synthetic record\n", i)
		b.WriteString("ACGTACGTNNACGTACGTAC\n")
		b.WriteString("GGCCTTAA\n")
	}
	return b.String()
}

func writeGenome(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genome.fna.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := gzip.NewWriter(f)
	_, err = io.WriteString(zw, fastaText(n))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name    string
		records int
		limit   int
		want    int
	}{
		{"under cap", 5, 20000, 5},
		{"exactly cap", 10, 10, 10},
		{"over cap", 25, 20, 20},
		{"no cap", 7, 0, 7},
		{"empty input", 0, 20000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Collect(strings.NewReader(fastaText(tt.records)), tt.limit)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestCollect_RecordContents(t *testing.T) {
	records, err := Collect(strings.NewReader(fastaText(2)), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "contig_0", records[0].Name())
	assert.Equal(t, "contig_1", records[1].Name())
	assert.Equal(t, 28, records[0].Len())
}

type failingReader struct {
	data io.Reader
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func TestCollect_ReadErrorIsParseError(t *testing.T) {
	broken := errors.New("truncated stream")
	r := &failingReader{data: strings.NewReader(fastaText(1) + ">partial\nACG"), err: broken}

	_, err := Collect(r, 0)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "parse fasta record")
}

func TestStream_OpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fna.gz"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStream_OpenNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.fna")
	require.NoError(t, os.WriteFile(path, []byte(fastaText(1)), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestStream_CollectsFromGzip(t *testing.T) {
	t.Run("5 records", func(t *testing.T) {
		s, err := Open(writeGenome(t, 5))
		require.NoError(t, err)
		defer s.Close()

		records, err := Collect(s, 20000)
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})

	t.Run("25000 records", func(t *testing.T) {
		s, err := Open(writeGenome(t, 25000))
		require.NoError(t, err)
		defer s.Close()

		records, err := Collect(s, 20000)
		require.NoError(t, err)
		assert.Len(t, records, 20000)
	})
}

func TestStream_RewindYieldsSameRecords(t *testing.T) {
	s, err := Open(writeGenome(t, 12))
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Rewind())
		records, err := Collect(s, 20000)
		require.NoError(t, err)
		assert.Len(t, records, 12, "pass %d", i)
	}

	// Rewind after a partial read starts over as well.
	require.NoError(t, s.Rewind())
	first, err := Collect(s, 4)
	require.NoError(t, err)
	require.NoError(t, s.Rewind())
	again, err := Collect(s, 4)
	require.NoError(t, err)
	assert.Equal(t, first[0].Name(), again[0].Name())
}

func TestStream_Close(t *testing.T) {
	s, err := Open(writeGenome(t, 1))
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())

	_, err = s.Read(make([]byte, 8))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.ErrorIs(t, s.Rewind(), os.ErrClosed)
}

func TestStream_Path(t *testing.T) {
	path := writeGenome(t, 1)
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, fastaText(1), buf.String())
}
