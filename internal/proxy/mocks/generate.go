package mocks

//go:generate go run go.uber.org/mock/mockgen -destination=mock_upstream.go -package=mocks github.com/mmcdole/cinefind/internal/proxy Upstream
