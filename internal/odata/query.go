package odata

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// BuildQuery собирает строку запроса OData для набора сущностей entitySet.
//
// Правила сборки:
//   - filters объединяются через " and " и попадают в $filter, только если список непуст;
//   - expands объединяются через запятую и попадают в $expand, только если список непуст;
//     вложенные под-выражения ($filter=...;$expand=...) передаются как есть, без разбора;
//   - каждая опция из opts становится одноимённым параметром $<key>=<value>,
//     опции со значением nil пропускаются; порядок опций детерминирован (по ключу);
//   - в конец всегда добавляется $format=json.
//
// Синтаксис фильтров и расширений не проверяется: ошибки выражений проявятся
// только как ответ об ошибке от вышестоящего API.
func BuildQuery(entitySet string, filters []string, expands []string, opts map[string]any) string {
	params := make([]string, 0, len(opts)+3)

	if len(filters) > 0 {
		params = append(params, "$filter="+url.QueryEscape(strings.Join(filters, " and ")))
	}
	if len(expands) > 0 {
		params = append(params, "$expand="+url.QueryEscape(strings.Join(expands, ",")))
	}

	keys := make([]string, 0, len(opts))
	for key, value := range opts {
		if value == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		params = append(params, fmt.Sprintf("$%s=%s", key, url.QueryEscape(fmt.Sprint(opts[key]))))
	}

	params = append(params, "$format=json")

	return entitySet + "?" + strings.Join(params, "&")
}
