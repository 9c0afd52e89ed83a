package converter

import (
	"strconv"
	"strings"
)

// gatherImages 按表头顺序收集非空图片 URL
// 尺码表图（如有）固定追加在最后，与其表头位置无关；重复 URL 跳过
func gatherImages(fm *FieldMap, row []string) []string {
	var images []string
	seen := make(map[string]struct{})

	appendURL := func(url string) {
		if url == "" || strings.EqualFold(url, "nan") {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		images = append(images, url)
	}

	for _, idx := range fm.ImageCols {
		appendURL(cellAt(row, idx))
	}
	if idx := fm.Col(FieldSizeChart); idx >= 0 {
		appendURL(cellAt(row, idx))
	}

	return images
}

// BuildImageRows 为产品的第 2 张起的图片生成纯图片行
// 每行只带 handle、图片 URL 和递增的图片位置，其余列留空
// startPos 由调用方显式传入（主图占 1，这里从 2 开始），不依赖任何共享计数器
func BuildImageRows(handle string, images []string, startPos int) []OutputRow {
	if len(images) <= 1 {
		return nil
	}

	rows := make([]OutputRow, 0, len(images)-1)
	pos := startPos
	for _, url := range images[1:] {
		rows = append(rows, OutputRow{
			keyHandle:        handle,
			keyImageURL:      url,
			keyImagePosition: strconv.Itoa(pos),
		})
		pos++
	}
	return rows
}
