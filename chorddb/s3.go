package chorddb

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// LoadS3 fetches the chord database object from S3. This is the one
// network step in the whole system; callers must finish it before
// building resolvers on top of the result.
func LoadS3(region, bucket, key string) (*DB, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}

	out, err := s3.New(sess).GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching chord database s3://%v/%v: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return FromJSON(out.Body)
}
