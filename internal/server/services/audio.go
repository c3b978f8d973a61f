package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/voicelab/voicelab/internal/dbx"
	sc "github.com/voicelab/voicelab/internal/server/config"
	"github.com/voicelab/voicelab/internal/server/models"
	"github.com/voicelab/voicelab/internal/server/repositories/repomanager"
)

// presignValidity bounds how long a presigned sample URL stays fetchable.
const presignValidity = 15 * time.Minute

type AudioService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewAudioService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *AudioService {
	return &AudioService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// GetByLanguage looks up the sample for the language (case-insensitive).
// Samples stored as s3:// locations are presigned into time-limited GET
// URLs; absolute http(s) URLs are returned as stored.
func (s *AudioService) GetByLanguage(ctx context.Context, language string) (*models.AudioURL, error) {

	language = strings.ToLower(strings.TrimSpace(language))

	repo := s.repomanager.Audio(s.db)

	sample, err := repo.GetByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(sample.URL, "s3://") {
		signed, err := s.presignGetURL(ctx, sample.URL)
		if err != nil {
			return nil, fmt.Errorf("error presigning sample url: %w", err)
		}
		sample.URL = signed
	}

	return sample, nil
}

func (s *AudioService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return s3.NewPresignClient(client), nil
}

// presignGetURL turns "s3://bucket/key" (or "s3://key" using the configured
// bucket) into a presigned GET URL.
func (s *AudioService) presignGetURL(ctx context.Context, location string) (string, error) {

	bucket := s.config.S3Bucket
	key := strings.TrimPrefix(location, "s3://")
	if i := strings.Index(key, "/"); i > 0 {
		bucket, key = key[:i], key[i+1:]
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// DefaultSamples are the rows the seeding command inserts when missing,
// matching the original sample catalog.
func DefaultSamples() []*models.AudioURL {
	return []*models.AudioURL{
		{
			Language:    "english",
			URL:         "https://example.com/audio/english_sample.mp3",
			Description: "English voice sample",
		},
		{
			Language:    "arabic",
			URL:         "https://example.com/audio/arabic_sample.mp3",
			Description: "Arabic voice sample",
		},
	}
}

// Seed inserts the default samples that are not present yet, in a single
// transaction, and returns the languages actually inserted.
func (s *AudioService) Seed(ctx context.Context) ([]string, error) {

	var inserted []string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Audio(tx)
		for _, sample := range DefaultSamples() {
			ok, err := repo.CreateIfMissing(ctx, sample)
			if err != nil {
				return err
			}
			if ok {
				inserted = append(inserted, sample.Language)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

// Counts reports stored row counts per collection, for the seeding report.
func (s *AudioService) Counts(ctx context.Context) (audioURLs, profiles, users int64, err error) {
	if audioURLs, err = s.repomanager.Audio(s.db).Count(ctx); err != nil {
		return
	}
	if profiles, err = s.repomanager.Onboarding(s.db).Count(ctx); err != nil {
		return
	}
	users, err = s.repomanager.Users(s.db).Count(ctx)
	return
}
