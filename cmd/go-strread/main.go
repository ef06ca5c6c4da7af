package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/CalebQ42/stringreader"
	"github.com/CalebQ42/stringreader/internal/log"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose")
	chunk := flag.Int("c", 3, "Chunk size")
	lines := flag.Bool("l", false, "Read line by line")
	comp := flag.String("z", "none", "Compression of the input (none, zlib, gzip, xz, lzma, lz4, zstd, lzo)")
	pack := flag.String("pack", "", "Compress the input with the given type and write it to stdout instead of draining it")
	literal := flag.Bool("s", false, "Treat the arguments as the text instead of a file name")
	flag.Parse()
	logger := log.New(*verbose)
	defer logger.Sync()
	if len(flag.Args()) < 1 {
		fmt.Println("Please provide a file name, or text with -s")
		os.Exit(0)
	}
	input, err := readInput(flag.Args(), *literal)
	if err != nil {
		logger.Fatalw("can't read input", "file", flag.Arg(0), "error", err)
	}
	if *pack != "" {
		c, err := stringreader.ParseCompression(*pack)
		if err != nil {
			logger.Fatal(err)
		}
		out, err := stringreader.Compress(input, c)
		if err != nil {
			logger.Fatal(err)
		}
		os.Stdout.WriteString(out)
		return
	}
	c, err := stringreader.ParseCompression(*comp)
	if err != nil {
		logger.Fatal(err)
	}
	rdr, err := stringreader.NewCompressed(input, c)
	if err != nil {
		logger.Fatal(err)
	}
	op := drainOptions(*chunk, *lines)
	op.Log = logger
	st, err := stringreader.Drain(rdr, os.Stdout, op)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Debugw("done", "bytes", st.Bytes, "reads", st.Reads)
}

func readInput(args []string, literal bool) (string, error) {
	if literal {
		return strings.Join(args, " "), nil
	}
	dat, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(dat), nil
}

// Chunks get printed one per line. Lines already end in a newline.
func drainOptions(chunk int, lines bool) *stringreader.DrainOptions {
	if lines {
		return stringreader.LineDrainOptions()
	}
	op := stringreader.DefaultDrainOptions()
	op.ChunkSize = chunk
	op.Separator = "\n"
	return op
}
