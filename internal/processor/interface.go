package processor

import "context"

// Processor handles one recording dropped into the input folder.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
