package quality

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// Параметры детектора выбросов. Семя фиксировано, чтобы оценка точности
// была воспроизводимой между запусками на одних данных.
const (
	outlierSeed          = 42
	outlierTrees         = 100
	outlierSampleSize    = 256
	outlierContamination = 0.1
)

var errDegenerateColumn = errors.New("вырожденная колонка: менее двух различных значений")

// isoNode узел изолирующего дерева. Внешний узел хранит размер
// оставшейся выборки для поправки на недостроенный путь.
type isoNode struct {
	split       float64
	left, right *isoNode
	size        int
	external    bool
}

// OutlierDetector одномерный изолирующий лес. Выбросы изолируются случайными
// разрезами быстрее типичных значений, поэтому короткий средний путь по
// деревьям означает аномальность точки.
type OutlierDetector struct {
	trees         int
	sampleSize    int
	contamination float64
	rng           *rand.Rand
}

// NewOutlierDetector создает детектор с фиксированным семенем
func NewOutlierDetector(seed int64) *OutlierDetector {
	return &OutlierDetector{
		trees:         outlierTrees,
		sampleSize:    outlierSampleSize,
		contamination: outlierContamination,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// CountOutliers возвращает число выбросов среди значений: доля contamination
// точек с наибольшим аномальным скором. Для менее чем двух различных значений
// возвращает ошибку — вызывающая сторона трактует это как отсутствие выбросов.
func (d *OutlierDetector) CountOutliers(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, errDegenerateColumn
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV == maxV {
		return 0, errDegenerateColumn
	}

	flagged := int(d.contamination * float64(len(values)))
	if flagged == 0 {
		return 0, nil
	}

	sample := d.sampleSize
	if sample > len(values) {
		sample = len(values)
	}
	heightLimit := int(math.Ceil(math.Log2(float64(sample))))

	forest := make([]*isoNode, d.trees)
	for i := range forest {
		forest[i] = d.buildTree(d.subsample(values, sample), 0, heightLimit)
	}

	norm := avgPathLength(sample)
	scores := make([]float64, len(values))
	for i, v := range values {
		pathSum := 0.0
		for _, tree := range forest {
			pathSum += pathLength(tree, v, 0)
		}
		avg := pathSum / float64(d.trees)
		scores[i] = math.Pow(2, -avg/norm)
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	threshold := sorted[len(sorted)-flagged]

	count := 0
	for _, s := range scores {
		if s >= threshold {
			count++
		}
	}
	if count > flagged {
		count = flagged
	}

	return count, nil
}

// subsample выборка без возвращения
func (d *OutlierDetector) subsample(values []float64, n int) []float64 {
	if n >= len(values) {
		return append([]float64(nil), values...)
	}
	picked := make([]float64, n)
	for i, idx := range d.rng.Perm(len(values))[:n] {
		picked[i] = values[idx]
	}
	return picked
}

// buildTree рекурсивно строит изолирующее дерево случайными разрезами
func (d *OutlierDetector) buildTree(values []float64, depth, heightLimit int) *isoNode {
	if depth >= heightLimit || len(values) <= 1 {
		return &isoNode{external: true, size: len(values)}
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV == maxV {
		return &isoNode{external: true, size: len(values)}
	}

	split := minV + d.rng.Float64()*(maxV-minV)

	var left, right []float64
	for _, v := range values {
		if v < split {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	return &isoNode{
		split: split,
		left:  d.buildTree(left, depth+1, heightLimit),
		right: d.buildTree(right, depth+1, heightLimit),
	}
}

// pathLength длина пути точки по дереву с поправкой на размер внешнего узла
func pathLength(node *isoNode, v float64, depth int) float64 {
	if node.external {
		return float64(depth) + avgPathLength(node.size)
	}
	if v < node.split {
		return pathLength(node.left, v, depth+1)
	}
	return pathLength(node.right, v, depth+1)
}

// avgPathLength средняя длина пути неуспешного поиска в BST размера n,
// c(n) = 2H(n-1) - 2(n-1)/n
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	h := math.Log(float64(n-1)) + 0.5772156649015329
	return 2*h - 2*float64(n-1)/float64(n)
}
