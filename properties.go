package meshgen

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type PropsType int

const (
	PROP_TYPE_STRING = iota
	PROP_TYPE_INT
	PROP_TYPE_FLOAT
	PROP_TYPE_BOOL
	PROP_TYPE_ARRAY
	PROP_TYPE_MAP
)

const (
	maxPropsCount = 1000
	maxKeyLen     = 100
	maxValueLen   = 100000
)

type PropsValue struct {
	Type  PropsType
	Value interface{}
}

// Properties 网格属性, 保存生成参数
type Properties map[string]PropsValue

func StringProp(v string) PropsValue { return PropsValue{Type: PROP_TYPE_STRING, Value: v} }
func IntProp(v int64) PropsValue     { return PropsValue{Type: PROP_TYPE_INT, Value: v} }
func FloatProp(v float64) PropsValue { return PropsValue{Type: PROP_TYPE_FLOAT, Value: v} }
func BoolProp(v bool) PropsValue     { return PropsValue{Type: PROP_TYPE_BOOL, Value: v} }

// String returns the string value stored under key, if any.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v.Type != PROP_TYPE_STRING {
		return "", false
	}
	s, ok := v.Value.(string)
	return s, ok
}

// Merge copies every entry of o into p, overwriting existing keys.
func (p Properties) Merge(o Properties) {
	for k, v := range o {
		p[k] = v
	}
}

// PropertiesMarshal 序列化Properties
func PropertiesMarshal(wt io.Writer, props Properties) error {
	if err := writeLittleUint32(wt, uint32(len(props))); err != nil {
		return fmt.Errorf("write properties count failed: %w", err)
	}
	for key, value := range props {
		if err := writeLittleUint32(wt, uint32(len(key))); err != nil {
			return fmt.Errorf("write key len failed: %w", err)
		}
		if _, err := wt.Write([]byte(key)); err != nil {
			return fmt.Errorf("write key content failed: %w", err)
		}
		if err := writeLittleUint32(wt, uint32(value.Type)); err != nil {
			return fmt.Errorf("write value type failed: %w", err)
		}
		if err := marshalPropsValue(wt, value); err != nil {
			return fmt.Errorf("write value %q failed: %w", key, err)
		}
	}
	return nil
}

func marshalPropsValue(wt io.Writer, value PropsValue) error {
	switch value.Type {
	case PROP_TYPE_STRING:
		str := value.Value.(string)
		if err := writeLittleUint32(wt, uint32(len(str))); err != nil {
			return err
		}
		_, err := wt.Write([]byte(str))
		return err
	case PROP_TYPE_INT:
		return binary.Write(wt, binary.LittleEndian, value.Value.(int64))
	case PROP_TYPE_FLOAT:
		return binary.Write(wt, binary.LittleEndian, math.Float64bits(value.Value.(float64)))
	case PROP_TYPE_BOOL:
		var b uint8
		if value.Value.(bool) {
			b = 1
		}
		_, err := wt.Write([]byte{b})
		return err
	case PROP_TYPE_ARRAY:
		arr := value.Value.([]PropsValue)
		if err := writeLittleUint32(wt, uint32(len(arr))); err != nil {
			return err
		}
		for _, item := range arr {
			if err := writeLittleUint32(wt, uint32(item.Type)); err != nil {
				return err
			}
			if err := marshalPropsValue(wt, item); err != nil {
				return err
			}
		}
		return nil
	case PROP_TYPE_MAP:
		return PropertiesMarshal(wt, value.Value.(Properties))
	}
	return fmt.Errorf("unknown property type %d", value.Type)
}

// PropertiesUnMarshal 反序列化Properties
func PropertiesUnMarshal(rd io.Reader) (Properties, error) {
	var size uint32
	if err := readLittleByte(rd, &size); err != nil {
		return nil, fmt.Errorf("read properties count failed: %w", err)
	}
	if size > maxPropsCount {
		return nil, fmt.Errorf("properties count %d exceeds %d", size, maxPropsCount)
	}

	props := make(Properties, size)
	for i := uint32(0); i < size; i++ {
		var keyLen uint32
		if err := readLittleByte(rd, &keyLen); err != nil {
			return nil, fmt.Errorf("read key len failed: %w", err)
		}
		if keyLen > maxKeyLen {
			return nil, fmt.Errorf("key len %d exceeds %d", keyLen, maxKeyLen)
		}
		key := make([]byte, keyLen)
		if _, err := io.ReadFull(rd, key); err != nil {
			return nil, fmt.Errorf("read key content failed: %w", err)
		}
		var propType uint32
		if err := readLittleByte(rd, &propType); err != nil {
			return nil, fmt.Errorf("read value type failed: %w", err)
		}
		value, err := unmarshalPropsValue(rd, PropsType(propType))
		if err != nil {
			return nil, fmt.Errorf("read value %q failed: %w", key, err)
		}
		props[string(key)] = value
	}
	return props, nil
}

func unmarshalPropsValue(rd io.Reader, propType PropsType) (PropsValue, error) {
	switch propType {
	case PROP_TYPE_STRING:
		var strLen uint32
		if err := readLittleByte(rd, &strLen); err != nil {
			return PropsValue{}, err
		}
		if strLen > maxValueLen {
			return PropsValue{}, fmt.Errorf("string len %d exceeds %d", strLen, maxValueLen)
		}
		buf := make([]byte, strLen)
		if _, err := io.ReadFull(rd, buf); err != nil {
			return PropsValue{}, err
		}
		return StringProp(string(buf)), nil
	case PROP_TYPE_INT:
		var v int64
		if err := readLittleByte(rd, &v); err != nil {
			return PropsValue{}, err
		}
		return IntProp(v), nil
	case PROP_TYPE_FLOAT:
		var bits uint64
		if err := readLittleByte(rd, &bits); err != nil {
			return PropsValue{}, err
		}
		return FloatProp(math.Float64frombits(bits)), nil
	case PROP_TYPE_BOOL:
		var b uint8
		if err := readLittleByte(rd, &b); err != nil {
			return PropsValue{}, err
		}
		return BoolProp(b == 1), nil
	case PROP_TYPE_ARRAY:
		var arrLen uint32
		if err := readLittleByte(rd, &arrLen); err != nil {
			return PropsValue{}, err
		}
		if arrLen > maxValueLen {
			return PropsValue{}, fmt.Errorf("array len %d exceeds %d", arrLen, maxValueLen)
		}
		arr := make([]PropsValue, arrLen)
		for i := range arr {
			var itemType uint32
			if err := readLittleByte(rd, &itemType); err != nil {
				return PropsValue{}, err
			}
			item, err := unmarshalPropsValue(rd, PropsType(itemType))
			if err != nil {
				return PropsValue{}, err
			}
			arr[i] = item
		}
		return PropsValue{Type: PROP_TYPE_ARRAY, Value: arr}, nil
	case PROP_TYPE_MAP:
		sub, err := PropertiesUnMarshal(rd)
		if err != nil {
			return PropsValue{}, err
		}
		return PropsValue{Type: PROP_TYPE_MAP, Value: sub}, nil
	}
	return PropsValue{}, fmt.Errorf("unknown property type %d", propType)
}
