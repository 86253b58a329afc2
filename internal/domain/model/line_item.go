package model

import (
	"strconv"
	"strings"
)

// カートの明細1件分。product_ids_qty の1セグメントに対応する。
type LineItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// DecodeLineItems は "33944:6;34080:2" 形式の複合フィールドを明細列に展開する。
// 戻り値の第2要素は読み捨てたセグメント（監査ログ用）。
//
// 仕様（互換性のため厳守）:
//   - 空文字はエラーではなく空列
//   - 末尾の ; は1つだけ許容
//   - ':' を含まないセグメント、数値に解釈できないセグメントは黙って捨てる
//   - 出現順は保持する
//
// エンコードは存在しない。保存する product_ids_qty はクライアントが送った
// 文字列そのものであり、デコード結果から作り直してはいけない。
func DecodeLineItems(raw string) ([]LineItem, []string) {
	items := []LineItem{}
	if raw == "" {
		return items, nil
	}

	var dropped []string
	for _, seg := range strings.Split(strings.TrimSuffix(raw, ";"), ";") {
		if seg == "" {
			continue
		}

		pidStr, qtyStr, found := strings.Cut(seg, ":")
		if !found {
			dropped = append(dropped, seg)
			continue
		}

		pid, err := strconv.ParseInt(pidStr, 10, 64)
		if err != nil {
			dropped = append(dropped, seg)
			continue
		}
		qty, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil {
			dropped = append(dropped, seg)
			continue
		}

		items = append(items, LineItem{ProductID: pid, Quantity: qty})
	}

	return items, dropped
}
