// Package s3 provides an asset store backed by Amazon S3 or any
// S3-compatible service such as MinIO or Wasabi.
//
// The store implements assets.Store, so an S3 bucket can be mounted as a
// static-file route exactly like a local filesystem:
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "my-assets",
//		Region: "eu-central-1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	b := router.New()
//	b.StaticFiles("/static", store, router.IndexFile("index.html"))
//
// Credentials are taken from the standard AWS resolution chain (environment,
// shared config, IAM role) unless static credentials are set on Config.
// A key prefix confines lookups to a subtree of the bucket:
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket:    "my-assets",
//		Region:    "eu-central-1",
//		KeyPrefix: "public/v2",
//	})
//
// For tests, NewWithClient accepts any implementation of the Client
// interface, so no AWS account is needed to exercise the store.
package s3
