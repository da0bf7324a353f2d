package tzx

import "retroio/amstrad/cpc"

// cpcExtended attempts CPC payload recognition over a StandardSpeedData
// block's data, returning an extra description line when the payload looks
// like a CPC header or data record.
func cpcExtended(data []byte) []string {
	header, rec, ok := cpc.Recognise(data)
	if !ok {
		return nil
	}
	if header != nil {
		return []string{header.String()}
	}
	return []string{rec.String()}
}
