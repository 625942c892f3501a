package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/PeterJCLaw/sb-vision/internal/pipeline"
	"github.com/PeterJCLaw/sb-vision/internal/runner"
)

const usage = `usage:
  visionci validate <pipeline.yml>
  visionci run <pipeline.yml> [workdir]

run executes the pipeline's steps locally (sh -c) against workdir,
which defaults to the current directory. The checkout step is a no-op
because the working directory is already checked out.`

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := logger.Init("development"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch os.Args[1] {
	case "validate":
		if err := validate(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("ok")
	case "run":
		workDir := "."
		if len(os.Args) > 3 {
			workDir = os.Args[3]
		}
		if err := run(os.Args[2], workDir); err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func validate(path string) error {
	def, err := pipeline.Load(path)
	if err != nil {
		return err
	}
	return def.Validate()
}

func run(path, workDir string) error {
	def, err := pipeline.Load(path)
	if err != nil {
		return err
	}
	if err := def.Validate(); err != nil {
		return err
	}

	r := runner.NewRunner(runner.NewLocalExecutor(), runner.NewLogStore("logs"), 10*time.Minute)
	checkout := func(ctx context.Context) (string, error) {
		return fmt.Sprintf("using existing working directory %s", workDir), nil
	}

	names := make([]string, 0, len(def.Jobs))
	for name := range def.Jobs {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx := context.Background()
	for _, name := range names {
		job := def.Jobs[name]
		pipelineRun := &dto.PipelineRun{
			Status:    constants.RunStatusRunning,
			CreatedAt: time.Now(),
		}
		fmt.Printf("==> Job %s (%s)\n", name, job.PrimaryImage())
		if err := r.RunJob(ctx, pipelineRun, job, workDir, checkout); err != nil {
			for _, step := range pipelineRun.Steps {
				fmt.Printf("  [%s] %s\n", step.Status, step.Name)
			}
			return err
		}
		for _, step := range pipelineRun.Steps {
			fmt.Printf("  [%s] %s\n", step.Status, step.Name)
		}
	}
	fmt.Println("pipeline finished successfully")
	return nil
}
