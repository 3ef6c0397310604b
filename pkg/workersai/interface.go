package workersai

import "context"

// IWorkersAI runs text-generation models on Cloudflare Workers AI.
type IWorkersAI interface {
	Run(ctx context.Context, req *RunRequest) (*RunResult, error)
	Model() string
}
