package normalizer

import "sort"

// ExtractItems normaliza las distintas formas de envoltorio que devuelven los
// backends a una lista plana de elementos:
//
//   - arreglo en el nivel superior            → tal cual
//   - objeto { data: [...] }                  → el arreglo interno
//   - objeto con valores que contienen listas → todas concatenadas en orden
//   - un único objeto con campos de registro  → envuelto en lista de uno
//   - nil o cualquier otra cosa               → lista vacía
func ExtractItems(raw interface{}) []interface{} {
	switch data := raw.(type) {
	case []interface{}:
		return data
	case map[string]interface{}:
		if inner, ok := data["data"].([]interface{}); ok {
			return inner
		}
		// Claves ordenadas para que el aplanado sea determinista
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var arrays []interface{}
		for _, k := range keys {
			if list, ok := data[k].([]interface{}); ok {
				arrays = append(arrays, list...)
			}
		}
		if len(arrays) > 0 {
			return arrays
		}
		return []interface{}{data}
	default:
		return []interface{}{}
	}
}
