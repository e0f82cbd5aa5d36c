package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/rainchen/dwr-cli/internal/util"
)

// SyncWithS3 pushes or pulls the data directory using per-file mtime
// metadata, transferring only what changed.
func SyncWithS3(config model.Config, direction string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	metadataPath := filepath.Join(config.DataDir, util.MetadataFileName)

	if direction == "pull" {
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(metadataPath)

		diff := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(diff) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			if err := util.SyncFilesToS3(config, "pull", diff); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		if err := util.SaveMetadata(metadataPath, remoteMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	} else if direction == "push" {
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		if err := util.SaveMetadata(metadataPath, localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		diff := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(diff) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			if err := util.SyncFilesToS3(config, "push", diff); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		if err := util.SaveMetadata(metadataPath, localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}
		if err := util.UploadMetadataToS3(s3Client, config); err != nil {
			return fmt.Errorf("❌ Failed to upload metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}
	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus lists the files a pull would update.
func ShowSyncStatus(config model.Config) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, util.MetadataFileName))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	diff := util.DetectChanges(localMetadata, remoteMetadata, "s3")
	if len(diff) == 0 {
		log.Println("✅ Everything is up-to-date.")
		return nil
	}

	log.Println("📌 Files to be updated from S3:")
	for _, file := range diff {
		log.Println("   -", file)
	}

	return nil
}
