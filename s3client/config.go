package s3client

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type EnvironmentConfig struct {
	BucketName  string `envconfig:"FLIP_S3_BUCKET" required:"true"`
	Region      string `envconfig:"FLIP_AWS_REGION" required:"true"`
	AwsEndpoint string `envconfig:"FLIP_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"FLIP_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"FLIP_AWS_ACCESS_KEY" default:""`
}

// createConfig uses static credentials when they are set and the default chain otherwise.
// A custom endpoint switches to path style addressing for S3 compatible stores.
func createConfig(env EnvironmentConfig) *aws.Config {
	cfg := aws.NewConfig().
		WithRegion(env.Region).
		WithMaxRetries(4).
		WithLogLevel(aws.LogDebug)

	if env.AccessKeyID != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(env.AccessKeyID, env.AccessKey, ""))
	}
	if env.AwsEndpoint != "" {
		cfg = cfg.WithEndpoint(env.AwsEndpoint).
			WithS3ForcePathStyle(true)
	}
	return cfg
}

func readEnvironment(errLogger *zerolog.Logger) (EnvironmentConfig, error) {
	var config EnvironmentConfig
	err := envconfig.Process("", &config)
	if err != nil {
		errLogger.Err(err).Msg("Got error while processing environment")
		return config, err
	}
	return config, nil
}

type s3Logger struct {
	sdkLogger zerolog.Logger
}

func getLogger(sdkLogger zerolog.Logger) *s3Logger {
	return &s3Logger{
		sdkLogger,
	}
}

func (logger *s3Logger) Log(v ...interface{}) {
	logger.sdkLogger.Debug().Msg(fmt.Sprint(v...))
}
