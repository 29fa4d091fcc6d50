// Package history records generated passwords outside the process. The file sink
// appends one password per line, optionally sealed with a gocloud.dev secrets keeper.
package history

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"gocloud.dev/secrets"

	// Register keeper drivers for HISTORY_KMS_KEY_URI
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// DefaultFile is the history file name used when none is configured.
const DefaultFile = "password_history.txt"

// Sealer encrypts a history line. *secrets.Keeper implements it.
type Sealer interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
}

// Sink is the history capability consumed by the password use case.
type Sink interface {
	Append(ctx context.Context, password string) error
	Close() error
}

// NoOpSink discards every password.
type NoOpSink struct{}

// NewNoOpSink returns a sink used when history is disabled.
func NewNoOpSink() *NoOpSink {
	return &NoOpSink{}
}

// Append does nothing.
func (n *NoOpSink) Append(ctx context.Context, password string) error {
	return nil
}

// Close does nothing.
func (n *NoOpSink) Close() error {
	return nil
}

// FileSink appends passwords to a file, one per line. Appends are serialized.
type FileSink struct {
	mu     sync.Mutex
	path   string
	sealer Sealer
	closer func() error
}

// NewFileSink returns a sink that writes plaintext lines to path.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultFile
	}
	return &FileSink{path: path}
}

// NewSealedFileSink returns a sink that writes base64 ciphertext lines to path.
func NewSealedFileSink(path string, sealer Sealer) *FileSink {
	sink := NewFileSink(path)
	sink.sealer = sealer
	return sink
}

// OpenFileSink builds the configured file sink. An empty keyURI keeps lines in
// plaintext, otherwise a keeper is opened for keyURI and owned by the sink.
func OpenFileSink(ctx context.Context, path, keyURI string) (*FileSink, error) {
	if keyURI == "" {
		return NewFileSink(path), nil
	}

	keeper, err := OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	sink := NewSealedFileSink(path, keeper)
	sink.closer = keeper.Close
	return sink, nil
}

// OpenKeeper opens a secrets.Keeper for keyURI.
// Supports: base64key://, hashivault://, awskms://, gcpkms://, azurekeyvault://
func OpenKeeper(ctx context.Context, keyURI string) (*secrets.Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open history keeper: %w", err)
	}
	return keeper, nil
}

// Path returns the file the sink appends to.
func (f *FileSink) Path() string {
	return f.path
}

// Append writes password as a new line.
func (f *FileSink) Append(ctx context.Context, password string) error {
	line := password
	if f.sealer != nil {
		ciphertext, err := f.sealer.Encrypt(ctx, []byte(password))
		if err != nil {
			return fmt.Errorf("failed to seal history entry: %w", err)
		}
		line = base64.StdEncoding.EncodeToString(ciphertext)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return file.Close()
}

// Close releases the keeper opened by OpenFileSink, if any.
func (f *FileSink) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer()
}
