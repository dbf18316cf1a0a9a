package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dinesim/dinesim/internal/cloudwriter"
	"github.com/dinesim/dinesim/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes each topic into its own parquet file, either on the
// local filesystem or in cloud storage through a cloudwriter.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

type parquetRestaurant struct {
	ID                    string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name                  string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cuisine               string  `parquet:"name=cuisine, type=BYTE_ARRAY, convertedtype=UTF8"`
	Location              string  `parquet:"name=location, type=BYTE_ARRAY, convertedtype=UTF8"`
	PriceRange            string  `parquet:"name=price_range, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating                float64 `parquet:"name=rating, type=DOUBLE"`
	AveragePricePerPerson string  `parquet:"name=average_price_per_person, type=BYTE_ARRAY, convertedtype=UTF8"`
	ReservationsRequired  bool    `parquet:"name=reservations_required, type=BOOLEAN"`
}

type parquetSlot struct {
	RestaurantID    string `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Date            string `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Time            string `parquet:"name=time, type=BYTE_ARRAY, convertedtype=UTF8"`
	AvailableTables int32  `parquet:"name=available_tables, type=INT32"`
}

type parquetBookingEvent struct {
	EventID         string `parquet:"name=event_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	EventType       string `parquet:"name=event_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Timestamp       int64  `parquet:"name=timestamp, type=INT64"`
	RestaurantID    string `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Date            string `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Time            string `parquet:"name=time, type=BYTE_ARRAY, convertedtype=UTF8"`
	PartySize       int32  `parquet:"name=party_size, type=INT32"`
	BookingID       string `parquet:"name=booking_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	TablesRemaining int32  `parquet:"name=tables_remaining, type=INT32"`
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	row, err := decodeRow(topic, msg)
	if err != nil {
		return err
	}

	pw, ok := p.writers[topic]
	if !ok {
		pw, err = p.createWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer for topic %s: %w", topic, err)
		}
		p.writers[topic] = pw
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write parquet row to topic %s: %w", topic, err)
	}
	return nil
}

func decodeRow(topic string, msg []byte) (interface{}, error) {
	switch topic {
	case models.TopicRestaurants:
		var restaurant models.Restaurant
		if err := json.Unmarshal(msg, &restaurant); err != nil {
			return nil, err
		}
		return parquetRestaurant{
			ID:                    restaurant.ID,
			Name:                  restaurant.Name,
			Cuisine:               restaurant.Cuisine,
			Location:              restaurant.Location,
			PriceRange:            restaurant.PriceRange,
			Rating:                restaurant.Rating,
			AveragePricePerPerson: restaurant.AveragePricePerPerson,
			ReservationsRequired:  restaurant.ReservationsRequired,
		}, nil

	case models.TopicAvailability:
		var slot models.SlotRecord
		if err := json.Unmarshal(msg, &slot); err != nil {
			return nil, err
		}
		return parquetSlot{
			RestaurantID:    slot.RestaurantID,
			Date:            slot.Date,
			Time:            slot.Time,
			AvailableTables: int32(slot.AvailableTables),
		}, nil

	case models.TopicBookingEvents:
		var event models.BookingEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return nil, err
		}
		return parquetBookingEvent{
			EventID:         event.EventID,
			EventType:       event.EventType,
			Timestamp:       event.Timestamp,
			RestaurantID:    event.RestaurantID,
			Date:            event.Date,
			Time:            event.Time,
			PartySize:       int32(event.PartySize),
			BookingID:       event.BookingID,
			TablesRemaining: int32(event.TablesRemaining),
		}, nil

	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
}

func schemaFor(topic string) interface{} {
	switch topic {
	case models.TopicRestaurants:
		return new(parquetRestaurant)
	case models.TopicAvailability:
		return new(parquetSlot)
	default:
		return new(parquetBookingEvent)
	}
}

func (p *ParquetOutput) createWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error

	objectPath := filepath.Join(p.folder, topic+".parquet")
	if p.cloudWriterFactory != nil {
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, err
		}
		fw = newCloudParquetFile(cw)
	} else {
		fullPath := filepath.Join(p.basePath, objectPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(fullPath)
		if err != nil {
			return nil, err
		}
	}

	pw, err := writer.NewParquetWriter(fw, schemaFor(topic), 4)
	if err != nil {
		return nil, err
	}
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			return fmt.Errorf("failed to finalize parquet topic %s: %w", topic, err)
		}
		if err := p.files[topic].Close(); err != nil {
			return fmt.Errorf("failed to close parquet file for topic %s: %w", topic, err)
		}
	}
	return nil
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// Reads and end-relative seeks are not supported for cloud objects.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
