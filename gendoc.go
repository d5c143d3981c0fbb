package eeviewer

// go get github.com/golang/mock/gomock
// go install github.com/golang/mock/mockgen

// Generate mocks of the browser-facing interfaces.
//go:generate mockgen -destination mapview/mock_mapview/mock_mapview.go github.com/ctessum/eeviewer/mapview Widget
//go:generate mockgen -destination chart/mock_chart/mock_chart.go github.com/ctessum/eeviewer/chart Panel,Renderer
//go:generate mockgen -destination controller/mock_controller/mock_controller.go github.com/ctessum/eeviewer/controller Fetcher,View

// Build the WASM client and its compressed copy.
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o gui/html/eeviewer.wasm ./gui/cmd"
//go:generate go run ./internal/compress -in gui/html/eeviewer.wasm
