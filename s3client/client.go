package s3client

import (
	"bytes"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"teinei.dev/flip/logger"
)

var (
	// errors
	NoSessionError error = errors.New("s3 client: no session")
)

type Client struct {
	mu   sync.Mutex
	sess *session.Session
	env  EnvironmentConfig
}

var clientLogger = logger.NewLogger("S3 client")
var sdkLogger = logger.NewLogger("S3 SDK")

func New() (*Client, error) {
	errLogger := clientLogger.With().Caller().Logger()
	env, err := readEnvironment(&errLogger)
	if err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	client := Client{env: env}
	if _, err := client.refreshSession(); err != nil {
		return nil, err
	}
	return &client, nil
}

func (client *Client) Upload(data []byte, key string) (*s3manager.UploadOutput, error) {
	var output *s3manager.UploadOutput
	err := client.withSession(func(sess *session.Session) error {
		var err error
		output, err = client.upload(sess, &s3manager.UploadInput{
			Bucket:      aws.String(client.env.BucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		return err
	})
	return output, err
}

func (client *Client) Download(key string) ([]byte, error) {
	var data []byte
	err := client.withSession(func(sess *session.Session) error {
		var err error
		data, err = client.download(sess, &s3.GetObjectInput{
			Bucket: aws.String(client.env.BucketName),
			Key:    aws.String(key),
		})
		return err
	})
	return data, err
}

func (client *Client) Close() {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.sess = nil
	clientLogger.Info().Msg("Closing client")
}

// withSession runs call and retries it once on a fresh session.
func (client *Client) withSession(call func(sess *session.Session) error) error {
	sess, err := client.session()
	if err != nil {
		return err
	}
	err = call(sess)
	if err == nil {
		return nil
	}
	clientLogger.Error().Err(err).Msg("Caught error while using S3 session, trying to refresh it")
	sess, refreshErr := client.refreshSession()
	if refreshErr != nil {
		clientLogger.Error().Err(refreshErr).Msg("Caught error while refreshing S3 session")
		return err
	}
	return call(sess)
}

func (client *Client) session() (*session.Session, error) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.sess == nil {
		return nil, NoSessionError
	}
	return client.sess, nil
}

func (client *Client) refreshSession() (*session.Session, error) {
	sess, err := session.NewSession(createConfig(client.env))
	client.mu.Lock()
	defer client.mu.Unlock()
	if err != nil {
		client.sess = nil
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}
	client.sess = sess
	clientLogger.Info().Str("region", client.env.Region).Msg("S3 session initialized")
	return sess, nil
}

func (client *Client) upload(sess *session.Session, params *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	clientLogger.Debug().Str("key", *params.Key).Msg("Uploading the file")
	return uploader.Upload(params)
}

func (client *Client) download(sess *session.Session, params *s3.GetObjectInput) ([]byte, error) {
	keyLogger := clientLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	buf := aws.NewWriteAtBuffer([]byte{})

	keyLogger.Debug().Msg("Downloading file")
	size, err := downloader.Download(buf, params)
	if err != nil {
		keyLogger.Error().Err(err).Msg("Failed to download file")
		return nil, err
	}
	keyLogger.Debug().Msgf("Downloaded %v bytes", size)
	return buf.Bytes(), nil
}
