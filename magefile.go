//go:build mage
// +build mage

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	BINARY_NAME                  = "rv2class"
	COMPOSE_FILE                 = "docker-compose.yml"
	DOCKER_DEFAULT_CONTEXT       = "default"
	DOCKER_BUILDX_BUILDER_NAME   = "container"
	DOCKER_BUILDX_CACHE_DIR_NAME = ".dockercache"

	DOCKER_ERR_BUILDX_CREATE_EXISTING_INSTANCE = "existing instance"
)

var ErrExistingBuilder = errors.New("Already existing docker buildkit builder")

type DockerServiceBuild struct {
	Target string            `json:"target"`
	Args   map[string]string `json:"args"`
}

type DockerComposeService struct {
	Name  string
	Build *DockerServiceBuild `json:"build"`
}

type DockerComposeFile struct {
	Name     string                          `json:"name"`
	Services map[string]DockerComposeService `json:"services"`
}

// Buildable returns services with a build section in a stable order.
func (f *DockerComposeFile) Buildable() []DockerComposeService {
	var result []DockerComposeService
	for name, service := range f.Services {
		if service.Build == nil {
			continue
		}
		service.Name = name
		result = append(result, service)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func parseDockerComposeFile(composeFilePath string) (*DockerComposeFile, error) {
	out, err := sh.Output("docker", "compose", "-f", composeFilePath, "config", "--format", "json")
	if err != nil {
		return nil, fmt.Errorf("unable read compose config. Err: %w", err)
	}

	var file DockerComposeFile
	if err := json.Unmarshal([]byte(out), &file); err != nil {
		return nil, fmt.Errorf("unable decode compose config. Err: %w", err)
	}
	return &file, nil
}

func buildxCreateBuilder(builderName, contextName string) error {
	_, err := sh.Output("docker", "buildx", "create", "--name", builderName, "--driver=docker-container", contextName)
	if err != nil && strings.Contains(err.Error(), DOCKER_ERR_BUILDX_CREATE_EXISTING_INSTANCE) {
		fmt.Println("[Docker]", ErrExistingBuilder.Error(), "name:", builderName)
		return nil
	}
	return err
}

func buildxBuildTarget(cache, label string, build *DockerServiceBuild) error {
	command := []string{
		"buildx", "build",
		fmt.Sprintf("--builder=%s", DOCKER_BUILDX_BUILDER_NAME),
		fmt.Sprintf("--cache-to=type=local,dest=%s", cache),
		fmt.Sprintf("--cache-from=type=local,src=%s", cache),
		"--target", build.Target,
		"--label", label,
		"--tag", fmt.Sprintf("%s:latest", label),
		"--load",
	}
	for argName, argVal := range build.Args {
		command = append(command, "--build-arg", fmt.Sprintf("%s=%s", argName, argVal))
	}
	command = append(command, ".")

	fmt.Printf("[Docker] Exec image %s build\n", label)
	return sh.RunV("docker", command...)
}

// Generate regenerates mocks.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Build compiles the server binary into bin/.
func Build() error {
	mg.Deps(Generate)
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "0"},
		"go", "build", "-trimpath", "-o", path.Join("bin", BINARY_NAME), "./cmd/rv2class",
	)
}

// Docker builds every compose service image with a shared buildx cache.
func Docker() error {
	file, err := parseDockerComposeFile(COMPOSE_FILE)
	if err != nil {
		return err
	}

	if err := sh.Run("docker", "context", "use", DOCKER_DEFAULT_CONTEXT); err != nil {
		return err
	}
	if err := buildxCreateBuilder(DOCKER_BUILDX_BUILDER_NAME, DOCKER_DEFAULT_CONTEXT); err != nil {
		return err
	}

	dirPath, err := os.Getwd()
	if err != nil {
		return err
	}
	cache := path.Join(dirPath, DOCKER_BUILDX_CACHE_DIR_NAME)
	fmt.Printf("[Docker] Use CACHE_DIR: %s | BUILDER_NAME: %s\n", cache, DOCKER_BUILDX_BUILDER_NAME)

	for _, service := range file.Buildable() {
		label := fmt.Sprintf("%s-%s", file.Name, service.Name)
		if err := buildxBuildTarget(cache, label, service.Build); err != nil {
			return fmt.Errorf("[Docker] Build %s | Error: %w", label, err)
		}
	}
	return nil
}
