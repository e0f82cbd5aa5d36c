package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Editor  string `yaml:"editor"`
	Backup  struct {
		Enable    bool   `yaml:"enable"`
		Retention int    `yaml:"retention"`
		BackupDir string `yaml:"backup_dir"`
	}
	Sync struct {
		Enable     bool   `yaml:"enable"`
		Platform   string `yaml:"platform"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	}
}

func DefaultConfig() Config {
	config := Config{
		DataDir: "~/.config/dwr/data",
		Editor:  "vim",
	}
	config.Backup.Enable = true
	config.Backup.Retention = 30
	config.Backup.BackupDir = "~/.config/dwr/backup"
	config.Sync.Platform = "aws"
	return config
}
