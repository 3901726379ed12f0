package privacy

import (
	"math"

	"privacyassist/dataset"
)

// PrivacyFactor вычисляет фактор приватности колонки: среднее по уникальным
// значениям величины 1 - 1/f, где f — частота значения. Чем выше фактор,
// тем ниже вероятность однозначной идентификации по этой колонке.
// Пустая или полностью пропущенная колонка дает 1.0: нет данных — нет риска.
//
// Среднее берется по уникальным значениям без взвешивания частотой, как в
// исходной методике: редкое значение влияет на оценку наравне с частым.
func PrivacyFactor(col *dataset.Column) float64 {
	freq := col.Frequencies()
	if len(freq) == 0 {
		return 1.0
	}

	sum := 0.0
	for _, f := range freq {
		identificationProbability := 1.0 / float64(f)
		sum += 1.0 - identificationProbability
	}

	return sum / float64(len(freq))
}

// ShannonEntropy вычисляет энтропию Шеннона колонки в битах:
// -Σ p(v)·log2(p(v)) по эмпирическому распределению непропущенных значений.
// Пустая или полностью пропущенная колонка дает 0.0.
func ShannonEntropy(col *dataset.Column) float64 {
	freq := col.Frequencies()
	total := 0
	for _, f := range freq {
		total += f
	}
	if total == 0 {
		return 0.0
	}

	entropy := 0.0
	for _, f := range freq {
		p := float64(f) / float64(total)
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// HartleyMeasure вычисляет меру Хартли: log10 от числа уникальных
// непропущенных значений. При одном и менее уникальном значении — 0.0.
func HartleyMeasure(col *dataset.Column) float64 {
	distinct := col.DistinctCount()
	if distinct <= 1 {
		return 0.0
	}
	return math.Log10(float64(distinct))
}

// cumulativePrivacyFactor вычисляет совокупный фактор приватности датасета
// как произведение по-колоночных факторов. Накопление идет в лог-пространстве,
// чтобы широкие датасеты не схлопывались в машинный ноль раньше времени.
func cumulativePrivacyFactor(factors []float64) float64 {
	if len(factors) == 0 {
		return 1.0
	}

	logSum := 0.0
	for _, f := range factors {
		if f <= 0 {
			// честный ноль: хотя бы одна колонка идентифицирует каждую строку
			return 0.0
		}
		logSum += math.Log(f)
	}

	return math.Exp(logSum)
}
