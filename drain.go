package stringreader

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"
)

var errBadChunkSize = errors.New("chunk size must be positive")

//Stats describes a finished Drain.
type Stats struct {
	Bytes int64
	Reads int //Reads that returned data. The final end of stream read isn't counted.
}

//Drain reads r until io.EOF, copying each chunk (or line) to w followed by op.Separator.
//If op is nil, DefaultDrainOptions is used.
func Drain(r io.Reader, w io.Writer, op *DrainOptions) (Stats, error) {
	if op == nil {
		op = DefaultDrainOptions()
	}
	if op.ChunkSize <= 0 {
		return Stats{}, errBadChunkSize
	}
	log := op.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if op.Lines {
		return drainLines(r, w, op, log)
	}
	var st Stats
	buf := make([]byte, op.ChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			st.Reads++
			st.Bytes += int64(n)
			log.Debugw("chunk", "read", st.Reads, "len", n, "data", string(buf[:n]))
			if err := writeChunk(w, buf[:n], op.Separator); err != nil {
				return st, err
			}
		}
		if err == io.EOF {
			return st, nil
		} else if err != nil {
			return st, err
		}
	}
}

func drainLines(r io.Reader, w io.Writer, op *DrainOptions, log *zap.SugaredLogger) (Stats, error) {
	var st Stats
	rdr := bufio.NewReader(r)
	for {
		line, err := rdr.ReadString('\n')
		if len(line) > 0 {
			st.Reads++
			st.Bytes += int64(len(line))
			log.Debugw("line", "read", st.Reads, "len", len(line), "data", line)
			if err := writeChunk(w, []byte(line), op.Separator); err != nil {
				return st, err
			}
		}
		if err == io.EOF {
			return st, nil
		} else if err != nil {
			return st, err
		}
	}
}

func writeChunk(w io.Writer, b []byte, sep string) error {
	_, err := w.Write(b)
	if err != nil {
		return err
	}
	if sep != "" {
		_, err = io.WriteString(w, sep)
	}
	return err
}
