// Package cloudwriter buffers object writes and uploads them wholesale on
// close. The Parquet output uses it to land snapshot files in cloud storage.
package cloudwriter

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
