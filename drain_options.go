package stringreader

import "go.uber.org/zap"

type DrainOptions struct {
	Log       *zap.SugaredLogger //Receives a debug line per chunk. Nil disables logging.
	ChunkSize int                //Size of the buffer handed to each Read. Defaults to 3.
	Lines     bool               //Read a line at a time through a bufio.Reader instead of fixed chunks.
	Separator string             //Written after every chunk or line. Defaults to nothing.
}

// The default drain options. Reads in chunks of 3 bytes.
func DefaultDrainOptions() *DrainOptions {
	return &DrainOptions{
		ChunkSize: 3,
	}
}

// Line by line options.
func LineDrainOptions() *DrainOptions {
	return &DrainOptions{
		ChunkSize: 3,
		Lines:     true,
	}
}
