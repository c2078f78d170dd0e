package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sysu-ecnc-dev/ga-lab/internal/ga"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveFitnessPlot 画出每一代的平均适应度以及其滑动平均，保存为 PNG
func SaveFitnessPlot(path, title string, means []float64, width, height int) error {
	if len(means) == 0 {
		return errors.New("没有可以绘制的数据")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("图片尺寸不合法: %dx%d", width, height)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Mean fitness"

	pts := make(plotter.XYs, len(means))
	for i, m := range means {
		pts[i].X = float64(i)
		pts[i].Y = m
	}
	meanLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(meanLine)
	p.Legend.Add("mean", meanLine)

	// 数据较多时额外画一条平滑后的曲线，看趋势更清楚
	window := max(len(means)/20, 1)
	if window > 1 {
		smoothed := ga.MovingAverage(means, window)
		smoothPts := make(plotter.XYs, len(smoothed))
		for i, m := range smoothed {
			smoothPts[i].X = float64(i + window - 1)
			smoothPts[i].Y = m
		}
		smoothLine, err := plotter.NewLine(smoothPts)
		if err != nil {
			return err
		}
		smoothLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(smoothLine)
		p.Legend.Add(fmt.Sprintf("moving avg (%d)", window), smoothLine)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("无法创建目录 %s: %w", dir, err)
		}
	}

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return fmt.Errorf("无法保存图片 %s: %w", path, err)
	}
	return nil
}
